package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talent-matcher/internal/db"
	"github.com/jonathan/talent-matcher/internal/feedback"
	"github.com/jonathan/talent-matcher/internal/llm"
	"github.com/jonathan/talent-matcher/internal/matching"
	"github.com/jonathan/talent-matcher/internal/ranking"
	"github.com/jonathan/talent-matcher/internal/structuring"
)

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	// ParserURL points at an optional external resume-parsing service.
	// Empty means the model path handles every resume.
	ParserURL string
}

// Server represents the HTTP server wrapping the matching core.
type Server struct {
	httpServer *http.Server
	database   *db.DB
	llmClient  llm.Client
	structurer *structuring.Structurer
	scorer     *matching.Scorer
	ranker     *ranking.Ranker
	feedback   *feedback.Service
	logger     *zap.Logger
}

// New creates a new server instance and wires the core components.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var parser structuring.ResumeParser
	if cfg.ParserURL != "" {
		parser = structuring.NewParserService(cfg.ParserURL)
	}

	scorer := matching.NewScorer(llmClient, database, logger)

	s := &Server{
		database:   database,
		llmClient:  llmClient,
		structurer: structuring.NewStructurer(llmClient, parser, logger),
		scorer:     scorer,
		ranker:     ranking.NewRanker(database, scorer, logger),
		feedback:   feedback.NewService(database, logger),
		logger:     logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /resumes/parse", s.handleParseResume)
	mux.HandleFunc("GET /candidates/{id}/recommendations", s.handleJobRecommendations)
	mux.HandleFunc("GET /jobs/{id}/recommendations", s.handleCandidateRecommendations)
	mux.HandleFunc("GET /match-score", s.handleMatchScore)
	mux.HandleFunc("POST /feedback", s.handleRecordFeedback)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.loggingMiddleware(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	return s, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	_ = s.llmClient.Close()
	s.database.Close()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("error encoding JSON response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
	}
	s.jsonResponse(w, status, map[string]string{"error": err.Error()})
}
