package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"github.com/ejharv/boxtracer/pkg/renderer"
	"github.com/ejharv/boxtracer/pkg/scene"
)

// Server handles web requests for the box tracer
type Server struct {
	port     int
	uploader *Uploader // nil when S3 publishing is not configured
}

// NewServer creates a new web server. S3 publishing is enabled when the
// S3_BUCKET environment variable is set.
func NewServer(port int) (*Server, error) {
	uploader, err := NewUploaderFromEnv()
	if err != nil {
		return nil, err
	}
	return &Server{port: port, uploader: uploader}, nil
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string  `json:"scene"`     // Scene name (e.g., "default")
	Width     int     `json:"width"`     // Image width
	Height    int     `json:"height"`    // Image height
	FOV       float64 `json:"fov"`       // Vertical field of view in degrees
	Workers   int     `json:"workers"`   // Render workers (0 = all CPUs)
	ThumbSize int     `json:"thumbSize"` // Downscaled width, 0 = full size
	Publish   bool    `json:"publish"`   // Upload the result to S3
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.routes()

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// routes builds the request multiplexer
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the requested scene and responds with a PNG
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj := createScene(req.Scene)
	if sceneObj == nil {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	// Apply request overrides on top of the scene defaults
	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}
	if req.FOV > 0 {
		sceneObj.FOV = req.FOV
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, sceneObj.Width, sceneObj.Height)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	startTime := time.Now()
	fb, stats, err := renderer.NewWorkerPool(raytracer, req.Workers).Render()
	if err != nil {
		http.Error(w, fmt.Sprintf("Render error: %v", err), http.StatusInternalServerError)
		return
	}
	log.Printf("Rendered %s (%dx%d, %d hits) in %v",
		req.Scene, sceneObj.Width, sceneObj.Height, stats.HitCount, time.Since(startTime))

	data, err := encodePNG(fb, req.ThumbSize)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode image: %v", err), http.StatusInternalServerError)
		return
	}

	if req.Publish {
		if s.uploader == nil {
			http.Error(w, "Publishing is not configured (set S3_BUCKET)", http.StatusBadRequest)
			return
		}
		key := fmt.Sprintf("renders/%s.png", uuid.NewString())
		if err := s.uploader.Upload(r.Context(), data, key); err != nil {
			http.Error(w, fmt.Sprintf("Upload failed: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("X-Render-Key", key)
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// encodePNG converts the framebuffer to PNG bytes, optionally downscaled to
// thumbWidth pixels wide
func encodePNG(fb *renderer.Framebuffer, thumbWidth int) ([]byte, error) {
	img := fb.ToRGBA()

	var buf bytes.Buffer
	if thumbWidth > 0 && thumbWidth < fb.Width {
		small := resize.Resize(uint(thumbWidth), 0, img, resize.Bilinear)
		if err := png.Encode(&buf, small); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	// Parse scene name (string parameter, validated against known scenes later)
	if scene := r.URL.Query().Get("scene"); scene != "" {
		req.Scene = scene
	} else {
		req.Scene = "default"
	}

	// Parse and validate all parameters using helper functions
	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(r.URL.Query(), "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.FOV, err = parseFloatParam(r.URL.Query(), "fov", 0, 1, 179); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(r.URL.Query(), "workers", 0, 1, 256); err != nil {
		return nil, err
	}
	if req.ThumbSize, err = parseIntParam(r.URL.Query(), "thumb", 0, 16, 1024); err != nil {
		return nil, err
	}
	req.Publish = r.URL.Query().Get("publish") == "true"

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation.
// An absent parameter yields defaultValue without range checking.
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation.
// An absent parameter yields defaultValue without range checking.
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene creates a scene based on the scene name
func createScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "default":
		return scene.NewDefaultScene()
	case "facing":
		return scene.NewFacingScene()
	case "cubes":
		return scene.NewCubesScene()
	default:
		return nil
	}
}
