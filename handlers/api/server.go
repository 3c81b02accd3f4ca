package api

import (
	"context"
	"net/http"

	"ytsummarizer/apikey"
	"ytsummarizer/config"
	"ytsummarizer/middleware"
	"ytsummarizer/services/chat"
	"ytsummarizer/services/video"

	"github.com/sirupsen/logrus"
)

type Server struct {
	video  *VideoHandler
	chat   *ChatHandler
	key    *KeyHandler
	config *config.Config
	logger *logrus.Logger
	server *http.Server
}

type ServerOption func(*Server)

func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		config: cfg,
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// WithServices sets up the handlers with the provided services.
func WithServices(videoSvc video.Service, chatSvc chat.Service, validator *apikey.Validator) ServerOption {
	return func(s *Server) {
		s.video = NewVideoHandler(videoSvc)
		s.chat = NewChatHandler(chatSvc)
		s.key = NewKeyHandler(validator)
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

func (s *Server) Start() error {
	s.logger.WithField("port", s.config.ServerPort).Info("Starting server")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /process_video", s.video.HandleProcessVideo)
	mux.HandleFunc("POST /chat", s.chat.HandleChat)
	mux.HandleFunc("POST /validate_api_key", s.key.HandleValidateKey)

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)

	return s.middleware(mux)
}

func (s *Server) middleware(handler http.Handler) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logging(s.logger),
		middleware.CORS(s.config.CORS),
		middleware.Timeout(s.config.RequestTimeout),
	}

	if s.config.RateLimit.Enabled {
		middlewares = append(middlewares, middleware.RateLimit(s.config.RateLimit))
	}

	return middleware.Chain(handler, middlewares...)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "YouTube Video Summarizer API"})
}
