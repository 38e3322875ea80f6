// Package stub is an in-process double of the store API, used by the
// end-to-end tests and by `storectl stub` for local development. It
// reproduces the API's quirks on purpose: bearer JWT auth, and list
// endpoints that answer with either a bare array or a {success, data}
// envelope depending on the collection.
package stub

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/freshcart/store-console/internal/core/domain"
)

var errUserExists = errors.New("user already exists")

const tokenTTL = 24 * time.Hour

// Server is the stub store API.
type Server struct {
	echo   *echo.Echo
	store  *memoryStore
	secret string
	log    zerolog.Logger
}

// NewServer builds the stub with all routes registered.
func NewServer(jwtSecret string, log zerolog.Logger) *Server {
	s := &Server{
		echo:   echo.New(),
		store:  newMemoryStore(),
		secret: jwtSecret,
		log:    log,
	}
	s.echo.HideBanner = true
	s.routes()
	return s
}

// Handler exposes the HTTP handler, so tests can mount the stub on an
// httptest.Server.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves the stub on addr and blocks.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("stub store API listening")
	return s.echo.Start(addr)
}

// SeedUser registers an account directly, bypassing the HTTP surface.
func (s *Server) SeedUser(username, password, role string) error {
	_, err := s.store.createUser(username, password, role)
	return err
}

// SeedSampleData loads a small catalog for local development.
func (s *Server) SeedSampleData() {
	s.store.putCategory(domain.Category{Name: "Produce"})
	s.store.putCategory(domain.Category{Name: "Dairy"})
	milk := s.store.putProduct(domain.Product{Name: "Whole Milk 1L", Price: 1.89, Quantity: 40, Category: "Dairy", SKU: "DA-001", IsActive: true})
	s.store.putProduct(domain.Product{Name: "Bananas 1kg", Price: 1.29, Quantity: 8, Category: "Produce", SKU: "PR-001", IsActive: true})
	cust := s.store.putCustomer(domain.Customer{Name: "Ada Shopper", Email: "ada@example.com", IsActive: true})
	s.store.putOrder(domain.Order{
		CustomerID:   cust.ID,
		CustomerName: cust.Name,
		Total:        3.78,
		Items:        []domain.OrderItem{{ProductID: milk.ID, Name: milk.Name, Quantity: 2, Price: milk.Price}},
	})
	s.store.putCoupon(domain.Coupon{
		Code: "WELCOME10", Name: "Welcome", Discount: 10, UsageLimit: 100,
		ExpiryDate: time.Now().AddDate(0, 1, 0), IsActive: true,
	})
}

func (s *Server) routes() {
	e := s.echo
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("storeapi"))
	e.GET("/metrics", echoprometheus.NewHandler())

	auth := s.authMiddleware()

	users := e.Group("/api/users")
	users.POST("/login", s.login)
	users.POST("/register", s.register)
	users.POST("/create", s.register) // legacy alias used by the register form
	users.GET("/get", s.whoAmI, auth)
	users.POST("/logout", s.logout)

	products := e.Group("/api/products", auth)
	products.GET("/get", s.listProducts)
	products.POST("/create", s.createProduct)
	products.PATCH("/:id", s.patchProduct)
	products.DELETE("/:id", s.deleteProduct)

	categories := e.Group("/api/categories", auth)
	categories.GET("/get", s.listCategories)
	categories.POST("/create", s.createCategory)
	categories.DELETE("/:id", s.deleteCategory)

	orders := e.Group("/api/orders", auth)
	orders.GET("/get", s.listOrders)
	orders.PATCH("/:id", s.patchOrder)

	customers := e.Group("/api/customers", auth)
	customers.GET("/get", s.listCustomers)
	customers.POST("/create", s.createCustomer)
	customers.PATCH("/:id", s.patchCustomer)
	customers.DELETE("/:id", s.deleteCustomer)

	coupons := e.Group("/api/coupons", auth)
	coupons.GET("/get", s.listCoupons)
	coupons.POST("/create", s.createCoupon)
	coupons.PATCH("/:id", s.patchCoupon)
	coupons.DELETE("/:id", s.deleteCoupon)

	e.GET("/api/store-settings", s.getSettings, auth)
	e.POST("/api/store-settings", s.saveSettings, auth)
}

// authMiddleware validates the bearer JWT and stashes the username.
func (s *Server) authMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, err := s.parseBearer(c.Request().Header.Get("Authorization"))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
			}
			c.Set("username", username)
			return next(c)
		}
	}
}

func (s *Server) parseBearer(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return "", errors.New("missing bearer token")
	}
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(header[len(prefix):], claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil || !tkn.Valid {
		return "", errors.New("invalid token")
	}
	username, _ := claims["username"].(string)
	if username == "" {
		return "", errors.New("token missing username")
	}
	return username, nil
}

func (s *Server) issueToken(u domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"role":     u.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	user, ok := s.store.authenticate(req.Username, req.Password)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	}
	token, err := s.issueToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message": "login successful",
		"data":    user,
		"token":   token,
	})
}

func (s *Server) register(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	user, err := s.store.createUser(req.Username, req.Password, req.Role)
	if errors.Is(err, errUserExists) {
		return echo.NewHTTPError(http.StatusConflict, "user already exists")
	}
	if err != nil {
		return err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"data":  user,
		"token": token,
	})
}

func (s *Server) whoAmI(c echo.Context) error {
	username, _ := c.Get("username").(string)
	user, ok := s.store.findUser(username)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
	}
	return c.JSON(http.StatusOK, user)
}

func (s *Server) logout(c echo.Context) error {
	// Tokens are stateless; logout exists so clients can be polite.
	return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}

// Products answer with a bare array; orders and customers use the
// {success, data} envelope. Consoles must cope with both.

func (s *Server) listProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listProducts())
}

func (s *Server) createProduct(c echo.Context) error {
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	quantity, _ := strconv.Atoi(c.FormValue("quantity"))
	active, _ := strconv.ParseBool(c.FormValue("isActive"))

	p := domain.Product{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       price,
		Quantity:    quantity,
		Category:    c.FormValue("category"),
		SKU:         c.FormValue("sku"),
		Barcode:     c.FormValue("barcode"),
		IsActive:    active,
	}
	if p.Name == "" || p.SKU == "" || p.Category == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name, category, and sku are required")
	}
	if file, err := c.FormFile("image"); err == nil {
		// The stub never persists bytes; it only records that an image
		// arrived.
		p.ImageURL = "/uploads/" + file.Filename
	}
	created := s.store.putProduct(p)
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "data": created})
}

func (s *Server) patchProduct(c echo.Context) error {
	patch := map[string]any{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	p, ok := s.store.patchProduct(c.Param("id"), patch)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c echo.Context) error {
	if !s.store.deleteProduct(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listCategories())
}

func (s *Server) createCategory(c echo.Context) error {
	var cat domain.Category
	if err := c.Bind(&cat); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if cat.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return c.JSON(http.StatusCreated, s.store.putCategory(cat))
}

func (s *Server) deleteCategory(c echo.Context) error {
	if !s.store.deleteCategory(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "category not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) listOrders(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": s.store.listOrders()})
}

func (s *Server) patchOrder(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if !domain.ValidOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid order status")
	}
	o, ok := s.store.setOrderStatus(c.Param("id"), req.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "order not found")
	}
	return c.JSON(http.StatusOK, o)
}

func (s *Server) listCustomers(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"success": true, "data": s.store.listCustomers()})
}

func (s *Server) createCustomer(c echo.Context) error {
	var cust domain.Customer
	if err := c.Bind(&cust); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if cust.Name == "" || cust.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email are required")
	}
	return c.JSON(http.StatusCreated, s.store.putCustomer(cust))
}

func (s *Server) patchCustomer(c echo.Context) error {
	var cust domain.Customer
	if err := c.Bind(&cust); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	updated, ok := s.store.updateCustomer(c.Param("id"), cust)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteCustomer(c echo.Context) error {
	if !s.store.deleteCustomer(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) listCoupons(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.listCoupons())
}

func (s *Server) createCoupon(c echo.Context) error {
	var coup domain.Coupon
	if err := c.Bind(&coup); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if coup.Code == "" || coup.Name == "" || coup.Discount < 1 || coup.Discount > 100 {
		return echo.NewHTTPError(http.StatusBadRequest, "code, name, and a 1-100 discount are required")
	}
	return c.JSON(http.StatusCreated, s.store.putCoupon(coup))
}

func (s *Server) patchCoupon(c echo.Context) error {
	var req struct {
		IsActive *bool `json:"isActive"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	coup, ok := s.store.patchCoupon(c.Param("id"), req.IsActive)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "coupon not found")
	}
	return c.JSON(http.StatusOK, coup)
}

func (s *Server) deleteCoupon(c echo.Context) error {
	if !s.store.deleteCoupon(c.Param("id")) {
		return echo.NewHTTPError(http.StatusNotFound, "coupon not found")
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (s *Server) getSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.getSettings())
}

func (s *Server) saveSettings(c echo.Context) error {
	var in domain.StoreSettings
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if in.StoreName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "storeName is required")
	}
	return c.JSON(http.StatusOK, s.store.saveSettings(in))
}
