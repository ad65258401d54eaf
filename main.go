package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/allanalmatech/ummahMatch/config"
	"github.com/allanalmatech/ummahMatch/routes"
	"github.com/allanalmatech/ummahMatch/services"
	"github.com/allanalmatech/ummahMatch/socket"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Socket server for realtime notifications and messages
	socketServer := socket.NewServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()
	broadcaster := &socket.Broadcaster{Server: socketServer}

	// Stores
	userStore := &services.UserStore{Dynamo: dynamoService, IDBatchSize: cfg.IDBatchSize}
	likeStore := &services.LikeStore{Dynamo: dynamoService}
	dislikeStore := &services.DislikeStore{Dynamo: dynamoService}
	blockStore := &services.BlockStore{Dynamo: dynamoService}
	favoriteStore := &services.FavoriteStore{Dynamo: dynamoService}
	viewStore := &services.ViewStore{Dynamo: dynamoService}
	matchStore := &services.MatchStore{Dynamo: dynamoService}
	purchaseStore := &services.PurchaseStore{Dynamo: dynamoService}
	conversationStore := &services.ConversationStore{Dynamo: dynamoService}

	// Services
	notificationService := &services.NotificationService{Dynamo: dynamoService, Emitter: broadcaster}
	reportService := &services.ReportService{Dynamo: dynamoService}
	entitlementService := &services.EntitlementService{
		Cfg:      cfg,
		Profiles: userStore,
		Matches:  matchStore,
		Boosts:   userStore,
	}
	matchService := &services.MatchService{
		Likes:    likeStore,
		Dislikes: dislikeStore,
		Blocks:   blockStore,
		Matches:  matchStore,
		Profiles: userStore,
		Notifier: notificationService,
	}
	discoveryService := &services.DiscoveryService{
		Cfg:      cfg,
		Pool:     userStore,
		Likes:    likeStore,
		Dislikes: dislikeStore,
		Blocks:   blockStore,
		Flags:    reportService,
	}
	connectionService := &services.ConnectionService{
		Profiles:     userStore,
		Likes:        likeStore,
		Favorites:    favoriteStore,
		Views:        viewStore,
		Matches:      matchStore,
		Blocks:       blockStore,
		Entitlements: entitlementService,
		Notifier:     notificationService,
	}
	chatService := &services.ChatService{
		Profiles:      userStore,
		Gate:          entitlementService,
		Conversations: conversationStore,
		Notifier:      notificationService,
		Emitter:       broadcaster,
	}
	purchaseService := &services.PurchaseService{
		Purchases:     purchaseStore,
		Boosts:        userStore,
		Subscriptions: userStore,
		Notifier:      notificationService,
	}
	userProfileService := &services.UserProfileService{Users: userStore, Gate: entitlementService}
	aiService := &services.AIService{
		Cfg:          cfg,
		Profiles:     userStore,
		Feed:         discoveryService,
		Generator:    services.NewAIClient(cfg.AIEndpoint),
		Entitlements: entitlementService,
	}
	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.S3Bucket)

	// Initialize the router
	r := mux.NewRouter()
	r.Handle("/socket.io/", socketServer)

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to UmmahMatch")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterInteractionRoutes(r, matchService, reportService)
	routes.RegisterDiscoveryRoutes(r, discoveryService)
	routes.RegisterConnectionRoutes(r, connectionService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterPurchaseRoutes(r, purchaseService, entitlementService)
	routes.RegisterNotificationRoutes(r, notificationService)
	routes.RegisterAdminRoutes(r, userProfileService, reportService)
	routes.RegisterAIRoutes(r, aiService)
	routes.RegisterS3Routes(r, s3Service)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
