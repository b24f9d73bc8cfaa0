package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"storefront/cmd/storefront/config"
	"storefront/cmd/storefront/models"
	"storefront/cmd/storefront/storage"
	"storefront/cmd/storefront/user"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService is the external settlement system the reconciliation
// workers poll.
type PaymentService interface {
	GetPaymentStatus(orderID string) (*models.PaymentResponse, error)
}

type Controller struct {
	conf           *config.Config
	storageService storage.StorageService
	sugar          *zap.SugaredLogger
	userService    user.UserService
	wp             *WorkerPool
	paymentService PaymentService
}

func NewController(conf *config.Config, storageService storage.StorageService, logger *zap.SugaredLogger,
	us user.UserService, wp *WorkerPool, ps PaymentService) *Controller {
	return &Controller{
		conf:           conf,
		storageService: storageService,
		sugar:          logger,
		userService:    us,
		wp:             wp,
		paymentService: ps,
	}
}

func (con *Controller) Register() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		userID := req.Header.Get("User-ID")

		var u user.User
		err := json.NewDecoder(req.Body).Decode(&u)
		if err != nil || u.Login == "" || u.Password == "" {
			http.Error(res, "Bad request", http.StatusBadRequest)
			return
		}

		hashedPassword, err := con.storageService.HashPassword(u.Password)
		if err != nil {
			http.Error(res, "Internal server error", http.StatusInternalServerError)
			return
		}

		ok := con.storageService.SaveLoginPassword(u.Login, hashedPassword)
		if !ok {
			http.Error(res, "Conflict: Login already taken", http.StatusConflict)
			return
		}

		if err := con.userService.SetUserIDCookie(res, userID); err != nil {
			con.sugar.Errorf("Error setting auth cookie: %v", err)
		}

		res.WriteHeader(http.StatusOK)
	}
}

func (con *Controller) Login() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		userID := req.Header.Get("User-ID")

		var u user.User
		err := json.NewDecoder(req.Body).Decode(&u)
		if err != nil || u.Login == "" || u.Password == "" {
			http.Error(res, "Bad request", http.StatusBadRequest)
			return
		}

		hashedPassword := con.storageService.GetHashedPasswordByLogin(u.Login)
		if hashedPassword == "" {
			http.Error(res, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !con.storageService.CheckPasswordHash(u.Password, hashedPassword) {
			http.Error(res, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if err := con.storageService.SaveUID(userID, u.Login); err != nil {
			http.Error(res, "Internal server error", http.StatusInternalServerError)
			return
		}

		if err := con.userService.SetUserIDCookie(res, userID); err != nil {
			con.sugar.Errorf("Error setting auth cookie: %v", err)
		}

		res.WriteHeader(http.StatusOK)
	}
}

type orderCreateRequest struct {
	ClientID    string  `json:"clientId"`
	TotalAmount float64 `json:"totalAmount"`
}

func (con *Controller) OrderCreate() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		userID := req.Header.Get("User-ID")
		if login := con.storageService.GetLoginByUID(userID); login == "" {
			http.Error(res, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var body orderCreateRequest
		err := json.NewDecoder(req.Body).Decode(&body)
		if err != nil || body.ClientID == "" || body.TotalAmount < 0 {
			http.Error(res, "Bad request", http.StatusBadRequest)
			return
		}

		order := models.Order{
			OrderID:       uuid.NewString(),
			Status:        "PENDING",
			PaymentStatus: "PENDING",
			TotalAmount:   body.TotalAmount,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}

		if err := con.storageService.AddOrder(body.ClientID, order); err != nil {
			con.sugar.Errorf("Error saving order: %v", err)
			http.Error(res, "Internal server error", http.StatusInternalServerError)
			return
		}

		ordersCreated.Inc()
		con.wp.AddTask(Task{OrderID: order.OrderID})

		res.Header().Set("Content-Type", "application/json")
		res.WriteHeader(http.StatusAccepted)
		if err := json.NewEncoder(res).Encode(order); err != nil {
			con.sugar.Errorf("Error encoding order: %v", err)
		}
	}
}

// OrdersGet serves the order-history view. The envelope carries either
// "data" (possibly an empty list) or "error"; the view surfaces the
// error string verbatim, so keep messages user-readable.
func (con *Controller) OrdersGet() http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		clientID := chi.URLParam(req, "clientID")
		if clientID == "" {
			writeOrdersResult(res, http.StatusBadRequest, &models.OrdersResult{Error: "missing client identifier"})
			return
		}

		orders, err := con.storageService.GetOrders(clientID)
		if err != nil {
			con.sugar.Errorf("Error fetching orders for %s: %v", clientID, err)
			writeOrdersResult(res, http.StatusInternalServerError, &models.OrdersResult{Error: "orders are temporarily unavailable"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}

		ordersFetched.Inc()
		writeOrdersResult(res, http.StatusOK, &models.OrdersResult{Data: orders})
	}
}

func writeOrdersResult(res http.ResponseWriter, code int, result *models.OrdersResult) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(code)
	_ = json.NewEncoder(res).Encode(result)
}
