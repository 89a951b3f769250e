package models

import "time"

// Employee is the record written to the employees collection. ID has the
// form "FP<n>" and never changes after creation.
type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateEmployeeDTO is the JSON payload accepted by POST /api/employees.
type CreateEmployeeDTO struct {
	Name            string `json:"name" binding:"required"`
	Department      string `json:"department" binding:"required,department"`
	Role            string `json:"role" binding:"required,jobrole"`
	Email           string `json:"email" binding:"required,fpemail"`
	Password        string `json:"password" binding:"required,fppassword"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// Departments and roles offered by the create-employee form.
var (
	DefaultDepartments = []string{
		"Engineering",
		"Finance",
		"Human Resources",
		"Marketing",
		"Operations",
		"Sales",
	}
	DefaultRoles = []string{
		"Employee",
		"Team Lead",
		"Manager",
		"HR",
		"Admin",
	}
)
