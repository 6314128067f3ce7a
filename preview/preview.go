// Package preview serves rendered cards and sheets over HTTP so they can be
// checked in a browser before printing.
package preview

import (
	"encoding/json"
	"image"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/jsphweid/stavecards/catalog"
	"github.com/jsphweid/stavecards/constants"
	"github.com/jsphweid/stavecards/deck"
	"github.com/jsphweid/stavecards/file"
	"github.com/jsphweid/stavecards/model"
	"github.com/jsphweid/stavecards/sheet"
	"github.com/rs/cors"
)

type server struct {
	deck *deck.Deck

	// sheets only change when the backgrounds do, which needs a restart
	once   sync.Once
	sheets []sheet.Sheet
	err    error
}

func NewRouter(d *deck.Deck) http.Handler {
	s := &server{deck: d}
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/catalog", s.handleCatalog).Methods("GET")
	router.HandleFunc("/cards/{clef}/{index:[0-9]+}.png", s.handleCard).Methods("GET")
	router.HandleFunc("/sheets/{number:[0-9]+}.png", s.handleSheet).Methods("GET")
	return cors.Default().Handler(router)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writePNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	if err := file.WritePNG(w, img, constants.DPI); err != nil {
		slog.Error("could not write png response", "err", err)
	}
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.CatalogResponse{
		Treble: catalog.Treble(),
		Bass:   catalog.Bass(),
	})
}

func (s *server) handleCard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notes := catalog.ForClef(model.Clef(vars["clef"]))
	if notes == nil {
		writeError(w, http.StatusNotFound, "Unknown clef: "+vars["clef"])
		return
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil || index >= len(notes) {
		writeError(w, http.StatusNotFound, "No card at index "+vars["index"])
		return
	}
	writePNG(w, s.deck.Renderer.Render(notes[index]))
}

func (s *server) handleSheet(w http.ResponseWriter, r *http.Request) {
	s.once.Do(func() {
		s.sheets, s.err = s.deck.Sheets(catalog.All())
	})
	if s.err != nil {
		writeError(w, http.StatusInternalServerError, "Could not build sheets: "+s.err.Error())
		return
	}

	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil || number < 1 || number > len(s.sheets) {
		writeError(w, http.StatusNotFound, "No sheet "+mux.Vars(r)["number"])
		return
	}
	writePNG(w, s.sheets[number-1].Image)
}
