package artist

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/melodia/internal/platform/request"
	"github.com/taibuivan/melodia/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the singer endpoints. Paths are registered without a
// trailing slash; the server strips it, so "/singers/" and "/singers" match.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/singers", handler.listArtists)
	router.Get("/singers/{"+FieldArtistID+"}", handler.listAlbums)
	router.Get("/singer/{"+FieldArtistID+"}", handler.listTracks)
}

func (handler *Handler) listArtists(writer http.ResponseWriter, request *http.Request) {
	artists, err := handler.service.ListArtists(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, artists)
}

func (handler *Handler) listAlbums(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, FieldArtistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	albums, err := handler.service.ListAlbums(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, albums)
}

func (handler *Handler) listTracks(writer http.ResponseWriter, request *http.Request) {
	artistID, err := requestutil.ID(request, FieldArtistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tracks, err := handler.service.ListTracks(request.Context(), artistID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, tracks)
}
