package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/standards-cli/internal/model"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start webhook server for assembly requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		// Set up routes
		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		mux.HandleFunc("POST /webhook/generate", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Industries   []string `json:"industries"`
				ProjectTypes []string `json:"project_types"`
				Modules      []string `json:"modules"`
				Manual       []string `json:"manual"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}

			requestID := uuid.New().String()
			profile := model.Profile{
				Industries:   req.Industries,
				ProjectTypes: req.ProjectTypes,
				Modules:      req.Modules,
			}

			manual := make([]model.MatchResult, 0, len(req.Manual))
			for _, id := range req.Manual {
				manual = append(manual, model.MatchResult{
					StandardID: id,
					Source:     model.SourceManual,
					Reason:     "manually selected",
				})
			}

			// The request context cancels the in-flight advisor call when
			// the client goes away; already-computed rule and filter
			// results are discarded with it.
			result, err := env.Pipeline.Run(r.Context(), profile, manual)
			if err != nil {
				zap.L().Error("webhook assembly failed",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				http.Error(w, `{"error":"assembly failed"}`, http.StatusInternalServerError)
				return
			}

			zap.L().Info("webhook assembly complete",
				zap.String("request_id", requestID),
				zap.Int("matches", result.Summary.Total),
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"request_id": requestID,
				"result":     result,
			})
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
