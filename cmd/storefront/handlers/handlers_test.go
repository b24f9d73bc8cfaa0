package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/cmd/storefront/config"
	"storefront/cmd/storefront/logger"
	"storefront/cmd/storefront/mocks"
	"storefront/cmd/storefront/models"
	"storefront/cmd/storefront/user"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
)

func prepare(t *testing.T) (*mocks.MockStorageService, *mocks.MockUserService, *mocks.MockPaymentService, *Controller) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	sugarLogger, _ := logger.NewLogger()
	conf := config.NewConfig()
	wp := NewWorkerPool(conf.NumWorkers, conf.MaxRequestsPerMin)
	mockStorageService := mocks.NewMockStorageService(ctrl)
	mockUserService := mocks.NewMockUserService(ctrl)
	mockPaymentService := mocks.NewMockPaymentService(ctrl)

	controller := NewController(conf, mockStorageService, sugarLogger, mockUserService, wp, mockPaymentService)

	return mockStorageService, mockUserService, mockPaymentService, controller
}

func Test_Register(t *testing.T) {
	mockStorageService, mockUserService, _, controller := prepare(t)

	mockStorageService.EXPECT().HashPassword("testPassword").Return("hashedPassword", nil)
	mockStorageService.EXPECT().SaveLoginPassword("testUser", "hashedPassword").Return(true)
	mockUserService.EXPECT().SetUserIDCookie(gomock.Any(), "testUserID").Return(nil)

	reqBody, _ := json.Marshal(map[string]string{
		"login":    "testUser",
		"password": "testPassword",
	})
	req := httptest.NewRequest("POST", "/api/user/register", bytes.NewReader(reqBody))
	req.Header.Set("User-ID", "testUserID")
	w := httptest.NewRecorder()

	handler := controller.Register()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status OK; got %v", resp.StatusCode)
	}
}

func Test_Login(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    user.User
		mockSetup      func(storage *mocks.MockStorageService, userSrv *mocks.MockUserService)
		expectedStatus int
	}{
		{
			name:        "Successful Login",
			requestBody: user.User{Login: "testUser", Password: "testPassword"},
			mockSetup: func(storage *mocks.MockStorageService, userSrv *mocks.MockUserService) {
				storage.EXPECT().GetHashedPasswordByLogin("testUser").Return("hashedPassword")
				storage.EXPECT().CheckPasswordHash("testPassword", "hashedPassword").Return(true)
				storage.EXPECT().SaveUID("testUserID", "testUser").Return(nil)
				userSrv.EXPECT().SetUserIDCookie(gomock.Any(), "testUserID").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Invalid Password",
			requestBody: user.User{Login: "testUser", Password: "wrongPassword"},
			mockSetup: func(storage *mocks.MockStorageService, _ *mocks.MockUserService) {
				storage.EXPECT().GetHashedPasswordByLogin("testUser").Return("hashedPassword")
				storage.EXPECT().CheckPasswordHash("wrongPassword", "hashedPassword").Return(false)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:        "User Not Found",
			requestBody: user.User{Login: "unknownUser", Password: "somePassword"},
			mockSetup: func(storage *mocks.MockStorageService, _ *mocks.MockUserService) {
				storage.EXPECT().GetHashedPasswordByLogin("unknownUser").Return("")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Bad Request - Missing Fields",
			requestBody:    user.User{Login: "missingPasswordUser", Password: ""},
			mockSetup:      func(_ *mocks.MockStorageService, _ *mocks.MockUserService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStorageService, mockUserService, _, controller := prepare(t)
			tt.mockSetup(mockStorageService, mockUserService)

			reqBody, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/api/user/login", bytes.NewReader(reqBody))
			req.Header.Set("User-ID", "testUserID")
			w := httptest.NewRecorder()

			handler := controller.Login()
			handler.ServeHTTP(w, req)

			resp := w.Result()
			defer resp.Body.Close()
			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("expected status %v; got %v", tt.expectedStatus, resp.StatusCode)
			}
		})
	}
}

func Test_OrdersGet_Data(t *testing.T) {
	mockStorageService, _, _, controller := prepare(t)

	orders := []models.Order{
		{OrderID: "order-1", Status: "DELIVERED", PaymentStatus: "PAID", TotalAmount: 19.5, CreatedAt: "2024-03-07T09:30:00Z"},
		{OrderID: "order-2", Status: "PENDING", PaymentStatus: "PENDING", TotalAmount: 5, CreatedAt: "2024-03-08T10:00:00Z"},
	}
	mockStorageService.EXPECT().GetOrders("client-1").Return(orders, nil)

	r := chi.NewRouter()
	r.Get("/api/clients/{clientID}/orders", controller.OrdersGet())

	req := httptest.NewRequest("GET", "/api/clients/client-1/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.StatusCode)
	}

	var result models.OrdersResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Error != "" {
		t.Errorf("unexpected error field: %q", result.Error)
	}
	if len(result.Data) != 2 || result.Data[0].OrderID != "order-1" || result.Data[1].OrderID != "order-2" {
		t.Errorf("rows not preserved in storage order: %+v", result.Data)
	}
}

func Test_OrdersGet_Empty(t *testing.T) {
	mockStorageService, _, _, controller := prepare(t)

	mockStorageService.EXPECT().GetOrders("client-9").Return(nil, nil)

	r := chi.NewRouter()
	r.Get("/api/clients/{clientID}/orders", controller.OrdersGet())

	req := httptest.NewRequest("GET", "/api/clients/client-9/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status OK; got %v", resp.StatusCode)
	}

	body := w.Body.String()
	if !bytes.Contains([]byte(body), []byte(`"data":[]`)) {
		t.Errorf("expected empty data array, got %s", body)
	}
}

func Test_OrdersGet_StorageError(t *testing.T) {
	mockStorageService, _, _, controller := prepare(t)

	mockStorageService.EXPECT().GetOrders("client-1").Return(nil, bytes.ErrTooLarge)

	r := chi.NewRouter()
	r.Get("/api/clients/{clientID}/orders", controller.OrdersGet())

	req := httptest.NewRequest("GET", "/api/clients/client-1/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500; got %v", resp.StatusCode)
	}

	var result models.OrdersResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Error != "orders are temporarily unavailable" {
		t.Errorf("unexpected error message: %q", result.Error)
	}
}

func Test_OrderCreate(t *testing.T) {
	mockStorageService, _, _, controller := prepare(t)

	mockStorageService.EXPECT().GetLoginByUID("testUserID").Return("testUser")
	mockStorageService.EXPECT().AddOrder("client-1", gomock.Any()).Return(nil)

	reqBody, _ := json.Marshal(orderCreateRequest{ClientID: "client-1", TotalAmount: 19.5})
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(reqBody))
	req.Header.Set("User-ID", "testUserID")
	w := httptest.NewRecorder()

	handler := controller.OrderCreate()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected status Accepted; got %v", resp.StatusCode)
	}

	var created models.Order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.OrderID == "" || created.Status != "PENDING" || created.PaymentStatus != "PENDING" {
		t.Errorf("unexpected created order: %+v", created)
	}
}

func Test_OrderCreate_Unauthorized(t *testing.T) {
	mockStorageService, _, _, controller := prepare(t)

	mockStorageService.EXPECT().GetLoginByUID("strangerID").Return("")

	reqBody, _ := json.Marshal(orderCreateRequest{ClientID: "client-1", TotalAmount: 19.5})
	req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(reqBody))
	req.Header.Set("User-ID", "strangerID")
	w := httptest.NewRecorder()

	handler := controller.OrderCreate()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status Unauthorized; got %v", resp.StatusCode)
	}
}
