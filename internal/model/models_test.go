package model

import "testing"

func TestDescribeEmployee(t *testing.T) {
	e := &Employee{ID: 7, Name: "Ana Garcia", Email: "ana@ecotech.com"}
	if got, want := DescribeEmployee(e), "Empleado #7: Ana Garcia - ana@ecotech.com"; got != want {
		t.Errorf("DescribeEmployee() = %q, want %q", got, want)
	}

	unsaved := &Employee{Name: "Ana Garcia", Email: "ana@ecotech.com"}
	if got, want := DescribeEmployee(unsaved), "Empleado #N/A: Ana Garcia - ana@ecotech.com"; got != want {
		t.Errorf("DescribeEmployee() = %q, want %q", got, want)
	}
}

func TestDescribeDepartment(t *testing.T) {
	d := &Department{ID: 3, Name: "Desarrollo"}
	if got, want := DescribeDepartment(d), "Departamento #3: Desarrollo"; got != want {
		t.Errorf("DescribeDepartment() = %q, want %q", got, want)
	}
}

func TestDescribeProject(t *testing.T) {
	p := &Project{ID: 5, Name: "Portal Web"}
	if got, want := DescribeProject(p), "Proyecto #5: Portal Web"; got != want {
		t.Errorf("DescribeProject() = %q, want %q", got, want)
	}
}
