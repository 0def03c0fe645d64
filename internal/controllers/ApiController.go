package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"photobooth/internal/camera"
	"photobooth/internal/frame"
	"photobooth/internal/providers"
	"photobooth/internal/services"
	"photobooth/internal/session"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.PhotoboothServiceInterface
}

func NewApiController(logger providers.Logger, service services.PhotoboothServiceInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrPhotoIndex),
		errors.Is(err, services.ErrNoPhotos):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidSettings),
		errors.Is(err, session.ErrInvalidConfig),
		errors.Is(err, frame.ErrMirrorMode),
		errors.Is(err, errBadParam):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrEditorClosed),
		errors.Is(err, services.ErrNoDrag),
		errors.Is(err, services.ErrSettingsLocked),
		errors.Is(err, session.ErrSessionRunning),
		errors.Is(err, session.ErrNotRunning),
		errors.Is(err, session.ErrCameraInactive),
		errors.Is(err, camera.ErrInactive):
		return http.StatusConflict
	case errors.Is(err, camera.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, camera.ErrNotFound),
		errors.Is(err, camera.ErrBusy):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (ac *ApiController) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		ac.logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
	} else {
		ac.logger.Debugf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// respond writes v, or the error mapped to its status.
func (ac *ApiController) respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

var errBadParam = errors.New("bad parameter")

// params merges the query string with a JSON object body. Body values win.
// Values are read leniently so "3" and 3 are both an int.
type params map[string]interface{}

func readParams(w http.ResponseWriter, r *http.Request) (params, error) {
	p := params{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
	if r.Body == nil || r.Method != http.MethodPost {
		return p, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadParam, err)
	}
	if len(data) == 0 {
		return p, nil
	}
	var body map[string]interface{}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: body is not a JSON object", errBadParam)
	}
	for k, v := range body {
		p[k] = v
	}
	return p, nil
}

func (p params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

func (p params) Int(key string) (int, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", errBadParam, key)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", errBadParam, key)
	}
	return n, nil
}

func (p params) Float(key string) (float64, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %q", errBadParam, key)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errBadParam, key)
	}
	return f, nil
}

func (p params) String(key string) (string, error) {
	v, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %q", errBadParam, key)
	}
	return cast.ToStringE(v)
}

func (p params) OptInt(key string) (*int, error) {
	if !p.Has(key) {
		return nil, nil
	}
	n, err := p.Int(key)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (p params) OptString(key string) (*string, error) {
	if !p.Has(key) {
		return nil, nil
	}
	s, err := p.String(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a string", errBadParam, key)
	}
	return &s, nil
}

// floats reads every key as a float, stopping at the first failure.
func (p params) floats(keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for i, k := range keys {
		f, err := p.Float(k)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// GetCamera reports camera activity, facing and mirror state.
func (ac *ApiController) GetCamera(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.CameraState())
}

func (ac *ApiController) StartCamera(w http.ResponseWriter, r *http.Request) {
	st, err := ac.service.StartCamera()
	ac.respond(w, r, st, err)
}

func (ac *ApiController) StopCamera(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.StopCamera())
}

func (ac *ApiController) ToggleCamera(w http.ResponseWriter, r *http.Request) {
	st, err := ac.service.ToggleCamera()
	ac.respond(w, r, st, err)
}

func (ac *ApiController) FlipCamera(w http.ResponseWriter, r *http.Request) {
	st, err := ac.service.FlipCamera()
	ac.respond(w, r, st, err)
}

// SetMirror sets {"mode": ...} or cycles to the next mode when none is given.
func (ac *ApiController) SetMirror(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	if !p.Has("mode") {
		writeJSON(w, http.StatusOK, ac.service.CycleMirrorMode())
		return
	}
	mode, err := p.String("mode")
	if err != nil {
		ac.fail(w, r, fmt.Errorf("%w: mode", errBadParam))
		return
	}
	st, err := ac.service.SetMirrorMode(mode)
	ac.respond(w, r, st, err)
}

func (ac *ApiController) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Settings())
}

func (ac *ApiController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	var patch services.SettingsPatch
	for key, dst := range map[string]**int{
		"totalPhotos":  &patch.TotalPhotos,
		"timerSeconds": &patch.TimerSeconds,
		"thickness":    &patch.Thickness,
		"opacity":      &patch.Opacity,
	} {
		if *dst, err = p.OptInt(key); err != nil {
			ac.fail(w, r, err)
			return
		}
	}
	for key, dst := range map[string]**string{
		"layout":     &patch.Layout,
		"frameType":  &patch.FrameType,
		"frameColor": &patch.FrameColor,
		"style":      &patch.Style,
	} {
		if *dst, err = p.OptString(key); err != nil {
			ac.fail(w, r, err)
			return
		}
	}
	st, err := ac.service.UpdateSettings(patch)
	ac.respond(w, r, st, err)
}

type overlayResponse struct {
	frame.Overlay
	CSS string `json:"css"`
}

func (ac *ApiController) GetOverlay(w http.ResponseWriter, r *http.Request) {
	ov, err := ac.service.Overlay()
	ac.respond(w, r, overlayResponse{Overlay: ov, CSS: ov.CSS()}, err)
}

func (ac *ApiController) StartSession(w http.ResponseWriter, r *http.Request) {
	s, err := ac.service.StartSession()
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	ac.logger.Infof(providers.TypePost, "Session %s started: %d photos, %ds timer", s.ID, s.Config.TotalPhotos, s.Config.TimerSeconds)
	writeJSON(w, http.StatusCreated, ac.service.Status())
}

func (ac *ApiController) AbortSession(w http.ResponseWriter, r *http.Request) {
	err := ac.service.AbortSession()
	ac.respond(w, r, ac.service.Status(), err)
}

func (ac *ApiController) NewSession(w http.ResponseWriter, r *http.Request) {
	err := ac.service.NewSession()
	ac.respond(w, r, ac.service.Status(), err)
}

func (ac *ApiController) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Status())
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	sum, err := ac.service.Stats()
	ac.respond(w, r, sum, err)
}

func (ac *ApiController) GetHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.History())
}

type savedSessionView struct {
	ID          string `json:"id"`
	SessionID   string `json:"sessionId"`
	Date        string `json:"date"`
	TotalPhotos int    `json:"totalPhotos"`
	Layout      string `json:"layout"`
}

// GetSavedSessions lists saved sessions without their image payloads.
func (ac *ApiController) GetSavedSessions(w http.ResponseWriter, r *http.Request) {
	saved := ac.service.SavedSessions()
	out := make([]savedSessionView, len(saved))
	for i, s := range saved {
		out[i] = savedSessionView{
			ID:          s.ID,
			SessionID:   s.SessionID,
			Date:        s.Date.Format(time.RFC3339),
			TotalPhotos: s.TotalPhotos,
			Layout:      string(s.Layout),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (ac *ApiController) SaveAllPhotos(w http.ResponseWriter, r *http.Request) {
	rec, err := ac.service.SaveAllPhotos()
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, savedSessionView{
		ID:          rec.ID,
		SessionID:   rec.SessionID,
		Date:        rec.Date.Format(time.RFC3339),
		TotalPhotos: rec.TotalPhotos,
		Layout:      string(rec.Layout),
	})
}

type shareResponse struct {
	Text string `json:"text"`
}

func (ac *ApiController) GetShare(w http.ResponseWriter, r *http.Request) {
	text, err := ac.service.ShareText()
	ac.respond(w, r, shareResponse{Text: text}, err)
}
