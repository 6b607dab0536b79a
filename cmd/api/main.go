package main

import (
	"log"
	"log/slog"
	"os"

	_ "github.com/aquihaydesarrollo/a-digital-central/api/swagger" // swagger docs
	"github.com/aquihaydesarrollo/a-digital-central/internal/database"
	"github.com/aquihaydesarrollo/a-digital-central/internal/handler"
	"github.com/aquihaydesarrollo/a-digital-central/internal/middleware"
	"github.com/aquihaydesarrollo/a-digital-central/internal/service"
	"github.com/aquihaydesarrollo/a-digital-central/internal/storage"
	"github.com/aquihaydesarrollo/a-digital-central/internal/store"
	"github.com/aquihaydesarrollo/a-digital-central/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Asesoría Digital Central API
// @version         1.0
// @description     Management backend for a fiscal and accounting advisory firm: clients, invoices, documents, tasks, payroll staff and the public service catalog with its contracting cart.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	postgresDSN := os.Getenv("DATABASE_URL")
	sqlitePath := os.Getenv("STORAGE_PATH")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if sqlitePath == "" {
		sqlitePath = "data/asesoria.db"
	}
	if adminEmail == "" {
		adminEmail = "admin@asesoria.es"
	}
	if adminPassword == "" {
		adminPassword = "admin"
	}

	db, err := database.NewConnection(postgresDSN, sqlitePath)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	st := store.New(storage.NewGormKV(db))
	seeded, err := st.Initialize()
	if err != nil {
		log.Fatalf("Store initialization failed: %v", err)
	}
	if seeded {
		slog.Info("seeded initial data")
	} else {
		slog.Info("store already initialized")
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	authService, err := service.NewAuthService(adminEmail, adminPassword, middleware.GetJWTSecret())
	if err != nil {
		log.Fatalf("Auth setup failed: %v", err)
	}
	asesoriaService := service.NewAsesoriaService(st, wsHub)
	clienteService := service.NewClienteService(st, wsHub)
	empleadoService := service.NewEmpleadoService(st, wsHub)
	empleadoClienteService := service.NewEmpleadoClienteService(st, wsHub)
	facturaService := service.NewFacturaService(st, wsHub)
	documentoService := service.NewDocumentoService(st, wsHub)
	tareaService := service.NewTareaService(st, wsHub)
	catalogoService := service.NewCatalogoService(st, wsHub)
	carritoService := service.NewCarritoService(st)
	resumenService := service.NewResumenService(st, tareaService)

	// Initialize Handlers
	authHandler := handler.NewAuthHandler(authService)
	asesoriaHandler := handler.NewAsesoriaHandler(asesoriaService, resumenService)
	clienteHandler := handler.NewClienteHandler(clienteService)
	empleadoHandler := handler.NewEmpleadoHandler(empleadoService)
	empleadoClienteHandler := handler.NewEmpleadoClienteHandler(empleadoClienteService)
	facturaHandler := handler.NewFacturaHandler(facturaService)
	documentoHandler := handler.NewDocumentoHandler(documentoService)
	tareaHandler := handler.NewTareaHandler(tareaService)
	catalogoHandler := handler.NewCatalogoHandler(catalogoService)
	carritoHandler := handler.NewCarritoHandler(carritoService)

	// Set up Gin Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:4321"} // Frontend URL
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// Register API Routes
	authHandler.RegisterRoutes(router.Group(""))
	asesoriaHandler.RegisterRoutes(router.Group(""))
	clienteHandler.RegisterRoutes(router.Group(""))
	empleadoHandler.RegisterRoutes(router.Group(""))
	empleadoClienteHandler.RegisterRoutes(router.Group(""))
	facturaHandler.RegisterRoutes(router.Group(""))
	documentoHandler.RegisterRoutes(router.Group(""))
	tareaHandler.RegisterRoutes(router.Group(""))
	catalogoHandler.RegisterRoutes(router.Group(""))
	carritoHandler.RegisterRoutes(router.Group(""))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
