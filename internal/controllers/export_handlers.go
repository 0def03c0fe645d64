package controllers

import (
	"fmt"
	"net/http"
	"strconv"
)

func writePNG(w http.ResponseWriter, data []byte, attachment string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	if attachment != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (ac *ApiController) GetPhotos(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.service.Photos())
}

// GetPhotoImage serves photo ?i= rendered with its stickers. With ?w= and
// ?h= it serves a thumbnail bounded by that box.
func (ac *ApiController) GetPhotoImage(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	i, err := p.Int("i")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	var data []byte
	if p.Has("w") || p.Has("h") {
		var width, height int
		if width, err = p.Int("w"); err == nil {
			height, err = p.Int("h")
		}
		if err != nil {
			ac.fail(w, r, err)
			return
		}
		data, err = ac.service.Preview(i, width, height)
	} else {
		data, err = ac.service.PhotoPNG(i)
	}
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writePNG(w, data, "")
}

func (ac *ApiController) ExportPhoto(w http.ResponseWriter, r *http.Request) {
	p, err := readParams(w, r)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	i, err := p.Int("i")
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	file, err := ac.service.ExportPhoto(i)
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writePNG(w, file.Data, file.Name)
}

func (ac *ApiController) ExportCollage(w http.ResponseWriter, r *http.Request) {
	file, err := ac.service.ExportCollage(r.Context())
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writePNG(w, file.Data, file.Name)
}

// GetCollage is the collage shown inline rather than downloaded.
func (ac *ApiController) GetCollage(w http.ResponseWriter, r *http.Request) {
	file, err := ac.service.ExportCollage(r.Context())
	if err != nil {
		ac.fail(w, r, err)
		return
	}
	writePNG(w, file.Data, "")
}
