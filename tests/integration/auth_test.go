package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/models"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	registerSupplierForTests(t, "alpha@suppliers.test", "Alpha Build SRL", nil)

	// duplicate email is refused
	input := dto.RegisterSupplierInput{
		Email:       "alpha@suppliers.test",
		Password:    "password123",
		CompanyName: "Alpha Build SRL",
	}
	doRequest(t, "POST", "/api/auth/register", "", input, http.StatusBadRequest)

	// and so is the same address in a different case
	input.Email = "Alpha@Suppliers.TEST"
	doRequest(t, "POST", "/api/auth/register", "", input, http.StatusBadRequest)

	token := loginForTests(t, "alpha@suppliers.test", "password123")

	w := doRequest(t, "GET", "/api/auth/me", token, nil, http.StatusOK)
	var me struct {
		Role     string          `json:"role"`
		Supplier models.Supplier `json:"supplier"`
	}
	decodeBody(t, w, &me)
	assert.Equal(t, string(models.UserRoleSupplier), me.Role)
	assert.Equal(t, "Alpha Build SRL", me.Supplier.CompanyName)
	assert.Equal(t, models.SupplierStatusPending, me.Supplier.Status)
}

func TestRegister_UnknownCPVCodeRejected(t *testing.T) {
	input := dto.RegisterSupplierInput{
		Email:       "beta@suppliers.test",
		Password:    "password123",
		CompanyName: "Beta SRL",
		CPVCodes:    []string{"11111111"},
	}
	doRequest(t, "POST", "/api/auth/register", "", input, http.StatusBadRequest)
}

func TestRegister_MalformedCPVCodeRejected(t *testing.T) {
	input := dto.RegisterSupplierInput{
		Email:       "gamma@suppliers.test",
		Password:    "password123",
		CompanyName: "Gamma SRL",
		CPVCodes:    []string{"not-a-code"},
	}
	doRequest(t, "POST", "/api/auth/register", "", input, http.StatusBadRequest)
}

func TestLogin_WrongPassword(t *testing.T) {
	registerSupplierForTests(t, "delta@suppliers.test", "Delta SRL", nil)

	doRequest(t, "POST", "/api/auth/login", "",
		dto.LoginInput{Email: "delta@suppliers.test", Password: "wrong-password"}, http.StatusUnauthorized)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	registerSupplierForTests(t, "epsilon@suppliers.test", "Epsilon SRL", nil)
	adminToken := loginForTests(t, adminEmail, adminPassword)

	// look the user id up via the admin listing
	w := doRequest(t, "GET", "/api/admin/users", adminToken, nil, http.StatusOK)
	var listing struct {
		Users []models.User `json:"users"`
	}
	decodeBody(t, w, &listing)

	var userID uint
	for _, u := range listing.Users {
		if u.Email == "epsilon@suppliers.test" {
			userID = u.ID
		}
	}
	if userID == 0 {
		t.Fatal("registered user missing from admin listing")
	}

	doRequest(t, "PUT", fmt.Sprintf("/api/admin/users/%d/deactivate", userID), adminToken, nil, http.StatusOK)
	doRequest(t, "POST", "/api/auth/login", "",
		dto.LoginInput{Email: "epsilon@suppliers.test", Password: "password123"}, http.StatusForbidden)

	doRequest(t, "PUT", fmt.Sprintf("/api/admin/users/%d/activate", userID), adminToken, nil, http.StatusOK)
	loginForTests(t, "epsilon@suppliers.test", "password123")
}

func TestRoleGate_SupplierCannotReachAdminAPI(t *testing.T) {
	registerSupplierForTests(t, "zeta@suppliers.test", "Zeta SRL", nil)
	token := loginForTests(t, "zeta@suppliers.test", "password123")

	doRequest(t, "GET", "/api/admin/users", token, nil, http.StatusForbidden)
}
