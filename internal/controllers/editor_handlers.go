package controllers

import (
	"net/http"
)

func (ac *ApiController) GetEditor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.EditorState())
}

// OpenEditor expects {"index": n}.
func (ac *ApiController) OpenEditor(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	i, err := p.Int("index")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	st, err := ac.service.OpenEditor(i)
	ac.respond(w, r, st, err)
}

func (ac *ApiController) CloseEditor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.CloseEditor())
}

// AddSticker expects {"symbol": "..."}.
func (ac *ApiController) AddSticker(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	symbol, err := p.String("symbol")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	st, err := ac.service.AddSticker(symbol)
	ac.respond(w, r, st, err)
}

// MoveSticker sets {"sticker", "x", "y"} in percent, or drags when the body
// carries pointer deltas: {"phase": "begin"|"move"|"end", "dx", "dy",
// "width", "height"}.
func (ac *ApiController) MoveSticker(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	if p.Has("phase") {
		ac.drag(w, r, p)
		return
	}
	i, err := p.Int("sticker")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	xy, err := p.floats("x", "y")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	st, err := ac.service.MoveSticker(i, xy[0], xy[1])
	ac.respond(w, r, st, err)
}

func (ac *ApiController) drag(w http.ResponseWriter, r *http.Request, p params) {
	phase, _ := p.String("phase")
	switch phase {
	case "begin":
		i, err := p.Int("sticker")
		if err != nil {
			ac.fail(w, r, err)
			return
		}
		st, err := ac.service.BeginDrag(i)
		ac.respond(w, r, st, err)
	case "move":
		v, err := p.floats("dx", "dy", "width", "height")
		if err != nil {
			ac.fail(w, r, err)
			return
		}
		st, err := ac.service.DragTo(v[0], v[1], v[2], v[3])
		ac.respond(w, r, st, err)
	case "end":
		writeJSON(w, http.StatusOK, ac.service.EndDrag())
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "phase must be begin, move or end"})
	}
}

// RotateSticker expects {"sticker", "degrees"}.
func (ac *ApiController) RotateSticker(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	i, err := p.Int("sticker")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	deg, err := p.Float("degrees")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	st, err := ac.service.RotateSticker(i, deg)
	ac.respond(w, r, st, err)
}

// ResizeSticker expects {"sticker", "size"}.
func (ac *ApiController) ResizeSticker(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	i, err := p.Int("sticker")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	size, err := p.Float("size")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	st, err := ac.service.ResizeSticker(i, size)
	ac.respond(w, r, st, err)
}

func (ac *ApiController) RemoveSticker(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	i, err := p.Int("sticker")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	st, err := ac.service.RemoveSticker(i)
	ac.respond(w, r, st, err)
}

func (ac *ApiController) ResetEditor(w http.ResponseWriter, r *http.Request) {
	st, err := ac.service.ResetEditor()
	ac.respond(w, r, st, err)
}

func (ac *ApiController) AutoEnhance(w http.ResponseWriter, r *http.Request) {
	st, err := ac.service.AutoEnhance()
	ac.respond(w, r, st, err)
}

func (ac *ApiController) SaveEdited(w http.ResponseWriter, r *http.Request) {
	st, err := ac.service.SaveEdited()
	ac.respond(w, r, st, err)
}

type applyAllResponse struct {
	Updated int      `json:"updated"`
	Edited  []uint32 `json:"edited"`
}

func (ac *ApiController) ApplyStickersToAll(w http.ResponseWriter, r *http.Request) {
	n, err := ac.service.ApplyStickersToAll()
	ac.respond(w, r, applyAllResponse{Updated: n, Edited: ac.service.EditedPhotos()}, err)
}

func (ac *ApiController) EditorPreview(w http.ResponseWriter, r *http.Request) {
	data, err := ac.service.EditorPreview()
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writePNG(w, data, "")
}
