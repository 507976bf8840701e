package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/metinatakli/movie-theater-api/api"
	"github.com/metinatakli/movie-theater-api/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	// money columns are NUMERIC(15,2)
	moneyPlaces = 2

	MsgMovieUpdated = "Movie updated successfully."
)

// updatableFields are the PATCH keys backed by NOT NULL columns.
var updatableFields = []string{"name", "date", "score", "overview", "status", "budget", "revenue"}

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := toPagination(params)

	total, err := app.movieRepo.Count(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	metadata, err := pagination.Paginate(total)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, errors.New(ErrNoMoviesFound))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	movies, err := app.movieRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// rows may disappear between the count and the fetch
	if len(movies) == 0 {
		app.notFoundResponseWithErr(w, r, errors.New(ErrNoMoviesFound))
		return
	}

	resp := api.MovieListResponse{
		Movies:     toMovieListItems(movies),
		TotalItems: metadata.TotalRecords,
		TotalPages: metadata.LastPage,
	}

	if metadata.HasPrev() {
		resp.PrevPage = app.pageLink(metadata.CurrentPage-1, metadata.PageSize)
	}
	if metadata.HasNext() {
		resp.NextPage = app.pageLink(metadata.CurrentPage+1, metadata.PageSize)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) pageLink(page, perPage int) *string {
	link := fmt.Sprintf("%s/movies/?page=%d&per_page=%d", app.config.BasePath, page, perPage)
	return &link
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := toDomainMovie(input)

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.editConflictResponseWithErr(w, r, movieExistsError(movie))
		case errors.Is(err, domain.ErrInvalidInput):
			app.contextGetLogger(r).InfoContext(r.Context(), "movie rejected by database", "error", err)
			app.badRequestResponse(w, r, errors.New(ErrInvalidInput))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.metrics.recordCreated(r.Context())

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, movieId int) {
	movie, err := app.movieRepo.GetById(r.Context(), movieId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, errors.New(ErrMovieNotFound))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	var (
		body  json.RawMessage
		input api.UpdateMovieRequest
	)

	err := app.readJSON(w, r, &body)
	if err == nil {
		err = json.Unmarshal(body, &input)
	}
	if err == nil {
		err = rejectNulls(body, updatableFields)
	}
	if err != nil {
		app.contextGetLogger(r).InfoContext(r.Context(), "invalid update body", "error", err)
		app.badRequestResponse(w, r, errors.New(ErrInvalidInput))
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.contextGetLogger(r).InfoContext(r.Context(), "invalid update values", "error", err)
		app.badRequestResponse(w, r, errors.New(ErrInvalidInput))
		return
	}

	update := toMovieUpdate(input)

	err = app.movieRepo.Update(r.Context(), movieId, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, errors.New(ErrMovieNotFound))
		case errors.Is(err, domain.ErrMovieAlreadyExists), errors.Is(err, domain.ErrInvalidInput):
			app.contextGetLogger(r).InfoContext(r.Context(), "update rejected by database", "error", err)
			app.badRequestResponse(w, r, errors.New(ErrInvalidInput))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.metrics.recordUpdated(r.Context())

	err = app.writeJSON(w, http.StatusOK, api.MessageResponse{Detail: MsgMovieUpdated}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, movieId int) {
	err := app.movieRepo.Delete(r.Context(), movieId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, errors.New(ErrMovieNotFound))
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	app.metrics.recordDeleted(r.Context())

	w.WriteHeader(http.StatusNoContent)
}

func movieExistsError(movie *domain.Movie) error {
	return fmt.Errorf(ErrMovieExists, movie.Name, movie.Date.Format(types.DateFormat))
}

func toPagination(params api.GetMoviesParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PerPage != nil {
		pagination.PageSize = *params.PerPage
	}

	return pagination
}

func toMovieListItems(movies []*domain.Movie) []api.MovieListItem {
	items := make([]api.MovieListItem, len(movies))

	for i, movie := range movies {
		items[i] = api.MovieListItem{
			Id:       movie.ID,
			Name:     movie.Name,
			Date:     types.Date{Time: movie.Date},
			Score:    movie.Score,
			Overview: movie.Overview,
		}
	}

	return items
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:       movie.ID,
		Name:     movie.Name,
		Date:     types.Date{Time: movie.Date},
		Score:    movie.Score,
		Overview: movie.Overview,
		Status:   movie.Status,
		Budget:   movie.Budget,
		Revenue:  movie.Revenue,
		Country: api.Country{
			Id:   movie.Country.ID,
			Code: movie.Country.Code,
			Name: movie.Country.Name,
		},
		Genres:    toIdNames(movie.Genres),
		Actors:    toIdNames(movie.Actors),
		Languages: toIdNames(movie.Languages),
	}
}

func toIdNames(entities []domain.NamedEntity) []api.IdName {
	idNames := make([]api.IdName, len(entities))

	for i, entity := range entities {
		idNames[i] = api.IdName{Id: entity.ID, Name: entity.Name}
	}

	return idNames
}

func toDomainMovie(input api.CreateMovieRequest) *domain.Movie {
	return &domain.Movie{
		Name:      input.Name,
		Date:      input.Date.Time,
		Score:     *input.Score,
		Overview:  *input.Overview,
		Status:    *input.Status,
		Budget:    input.Budget.Round(moneyPlaces),
		Revenue:   input.Revenue.Round(moneyPlaces),
		Country:   domain.Country{Code: strings.ToUpper(input.Country)},
		Genres:    domain.NewNamedEntities(input.Genres),
		Actors:    domain.NewNamedEntities(input.Actors),
		Languages: domain.NewNamedEntities(input.Languages),
	}
}

func toMovieUpdate(input api.UpdateMovieRequest) domain.MovieUpdate {
	update := domain.MovieUpdate{
		Name:     input.Name,
		Score:    input.Score,
		Overview: input.Overview,
		Status:   input.Status,
	}

	if input.Budget != nil {
		budget := input.Budget.Round(moneyPlaces)
		update.Budget = &budget
	}
	if input.Revenue != nil {
		revenue := input.Revenue.Round(moneyPlaces)
		update.Revenue = &revenue
	}
	if input.Date != nil {
		date := input.Date.Time
		update.Date = &date
	}

	return update
}
