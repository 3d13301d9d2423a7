package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openprocure/portal-go/config"
	"github.com/openprocure/portal-go/db"
	"github.com/openprocure/portal-go/dto"
	"github.com/openprocure/portal-go/internal/testutils"
	"github.com/openprocure/portal-go/middleware"
	"github.com/openprocure/portal-go/models"
	"github.com/openprocure/portal-go/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var router *gin.Engine

const (
	adminEmail    = "admin@portal.test"
	adminPassword = "admin-password"
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
	router = gin.New()
	routes.RegisterRoutes(router)

	seedAdmin()

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func seedAdmin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	admin := models.User{
		Email:    adminEmail,
		Password: string(hashed),
		Role:     models.UserRoleAdmin,
		IsActive: true,
	}
	if err := db.DB.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}
}

// --- Helper functions ---

// doRequest sends a JSON request through the router. A nil body means the
// parameters are already in the path.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func loginForTests(t *testing.T, email, password string) string {
	w := doRequest(t, "POST", "/api/auth/login", "", dto.LoginInput{Email: email, Password: password}, http.StatusOK)

	var body struct {
		Token string `json:"token"`
	}
	decodeBody(t, w, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

// createCPVForTests registers a CPV code through the admin API and returns its id.
func createCPVForTests(t *testing.T, adminToken, code string) uint {
	w := doRequest(t, "POST", "/api/cpv", adminToken, dto.CreateCodeInput{Code: code, Description: "test code"}, http.StatusCreated)

	var body struct {
		CPVCode models.CPVCode `json:"cpv_code"`
	}
	decodeBody(t, w, &body)
	require.NotZero(t, body.CPVCode.ID)
	return body.CPVCode.ID
}

// registerSupplierForTests registers a supplier account and returns the supplier id.
func registerSupplierForTests(t *testing.T, email, companyName string, cpvCodes []string) uint {
	input := dto.RegisterSupplierInput{
		Email:       email,
		Password:    "password123",
		CompanyName: companyName,
		Country:     "Romania",
		CPVCodes:    cpvCodes,
	}
	w := doRequest(t, "POST", "/api/auth/register", "", input, http.StatusCreated)

	var body struct {
		Supplier models.Supplier `json:"supplier"`
	}
	decodeBody(t, w, &body)
	require.NotZero(t, body.Supplier.ID)
	return body.Supplier.ID
}

// createEntityForTests onboards a procuring-entity account via the admin API.
func createEntityForTests(t *testing.T, adminToken, email, entityName string) {
	input := dto.CreateUserInput{
		Email:      email,
		Password:   "password123",
		Role:       string(models.UserRoleProcuringEntity),
		EntityName: entityName,
	}
	doRequest(t, "POST", "/api/admin/users", adminToken, input, http.StatusCreated)
}

func approveSupplierForTests(t *testing.T, adminToken string, supplierID uint) {
	doRequest(t, "PUT", fmt.Sprintf("/api/admin/suppliers/%d/approve", supplierID), adminToken, nil, http.StatusOK)
}
