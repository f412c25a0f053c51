package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"grammar-lens/internal/app"
	"grammar-lens/internal/examples"
	"grammar-lens/internal/extract"
	"grammar-lens/internal/httputil"
	"grammar-lens/internal/render"
)

//go:embed web
var webFS embed.FS

type analyzeRequest struct {
	Text     string `json:"text" validate:"required"`
	Task     string `json:"task" validate:"required,oneof=grammar phrase keyword combined"`
	Model    string `json:"model" validate:"omitempty,max=64"`
	Depth    string `json:"depth" validate:"omitempty,oneof=basic detailed"`
	Language string `json:"language" validate:"omitempty,oneof=zh en"`
	Mode     string `json:"mode" validate:"omitempty,oneof=highlight tags"`
	Group    string `json:"group" validate:"omitempty,oneof=class level"`
}

type analyzeResponse struct {
	AnalysisID string               `json:"analysis_id"`
	Text       string               `json:"text"`
	Task       string               `json:"task"`
	Mode       string               `json:"mode"`
	Group      string               `json:"group"`
	Spans      []extract.Span       `json:"spans"`
	Stats      extract.Stats        `json:"stats"`
	HTML       template.HTML        `json:"html"`
	Tags       []render.TagGroup    `json:"tags"`
	Legend     []render.LegendEntry `json:"legend"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	r := httputil.NewRouter(deps.Log)
	validate := validator.New()

	r.Post("/api/analyze", analyzeHandler(deps, validate))
	r.Get("/api/examples", examplesHandler(deps))
	r.Get("/api/tasks", tasksHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))
	r.Handle("/*", uiHandler(deps.Log))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", deps.Config.Port),
		Handler: r,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		deps.Log.Error("server stopped", "err", err)
	}
	// The Gemini client holds a gRPC connection; release it once serving ends.
	if closer, ok := deps.LLM.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			deps.Log.Warn("failed to close LLM client", "err", err)
		}
	}
}

func analyzeHandler(deps app.Deps, validate *validator.Validate) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid JSON body", err, http.StatusBadRequest)
			return
		}
		if err := validate.Struct(req); err != nil {
			httputil.Fail(deps.Log, w, "invalid request: "+err.Error(), err, http.StatusBadRequest)
			return
		}
		if max := deps.Config.MaxTextLength; max > 0 && utf8.RuneCountInString(req.Text) > max {
			httputil.Fail(deps.Log, w, fmt.Sprintf("text too long (max %d characters)", max), nil, http.StatusBadRequest)
			return
		}

		lang := examples.Language(req.Language)
		if lang == "" {
			lang = examples.LangChinese
		}
		mode := render.Mode(req.Mode)
		if mode == "" {
			mode = render.ModeHighlight
		}

		res, err := deps.Engine.Analyze(r.Context(), extract.Request{
			Text:     req.Text,
			Task:     examples.Task(req.Task),
			Model:    req.Model,
			Depth:    extract.Depth(req.Depth),
			Language: lang,
		})
		if err != nil {
			httputil.Fail(deps.Log, w, "analysis failed", err, http.StatusBadGateway)
			return
		}

		group := req.Group
		if group == "" {
			group = "class"
		}
		tags := render.GroupByClass(res.Spans, lang)
		if group == "level" {
			tags = render.GroupByLevel(res.Spans, lang)
		}

		// Both renderings are computed from the same span set; the mode flag
		// only tells the UI which one to show first.
		httputil.WriteJSON(w, http.StatusOK, analyzeResponse{
			AnalysisID: res.ID.String(),
			Text:       res.Text,
			Task:       req.Task,
			Mode:       string(mode),
			Group:      group,
			Spans:      res.Spans,
			Stats:      extract.Summarize(res),
			HTML:       render.Highlight(res.Text, res.Spans),
			Tags:       tags,
			Legend:     render.Legend(res.Spans, lang),
		})
	}
}

func examplesHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"examples": examples.Samples(),
		})
	}
}

func tasksHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := examples.Language(r.URL.Query().Get("language"))
		if lang == "" {
			lang = examples.LangChinese
		}
		type taskInfo struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		}
		tasks := make([]taskInfo, 0, len(examples.Tasks()))
		for _, t := range examples.Tasks() {
			tasks = append(tasks, taskInfo{ID: string(t), Label: t.Label(lang)})
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
	}
}

func uiHandler(log *slog.Logger) http.Handler {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Error("embedded UI missing", "err", err)
		return http.NotFoundHandler()
	}
	return http.FileServer(http.FS(sub))
}
