package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/hcmut-hub/tkb/core"
	"github.com/hcmut-hub/tkb/core/catalog"
	"github.com/hcmut-hub/tkb/core/schedule"
)

type scheduleApi struct {
	catalogSvc  *catalog.Service
	scheduleSvc *schedule.Service
	validate    *validator.Validate
}

func registerScheduleAPI(g *echo.Group, catalogSvc *catalog.Service, scheduleSvc *schedule.Service, validate *validator.Validate) {
	api := scheduleApi{
		catalogSvc:  catalogSvc,
		scheduleSvc: scheduleSvc,
		validate:    validate,
	}

	g.GET("/courses/search", api.searchCourses)

	sg := g.Group("/schedule")
	sg.GET("", api.query)
	sg.GET("/grouped", api.queryGrouped)
	sg.GET("/days", api.monthGrid)

	fg := g.Group("/filters")
	fg.GET("", api.getFilters)
	fg.PUT("", api.putFilters)
	fg.POST("/clear", api.clearFilters)
	fg.POST("/reset", api.resetFilters)

	pg := g.Group("/personal")
	pg.GET("", api.personal)
	pg.POST("/import", api.importPersonal)
	pg.DELETE("", api.clearPersonal)
}

// Handlers

func (api *scheduleApi) searchCourses(ctx echo.Context) error {
	q := ctx.QueryParam(searchParam)
	matches := api.catalogSvc.Search(q)
	resp := make([]CourseResponse, 0, len(matches))
	for _, c := range matches {
		resp = append(resp, newCourseResponse(c))
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *scheduleApi) query(ctx echo.Context) error {
	var sq SelectionQuery
	sq.Bind(ctx, api.scheduleSvc.Filters())
	return ctx.JSON(http.StatusOK, newItemResponses(api.catalogSvc.Query(sq.Filter)))
}

func (api *scheduleApi) queryGrouped(ctx echo.Context) error {
	var sq SelectionQuery
	sq.Bind(ctx, api.scheduleSvc.Filters())

	groups := api.catalogSvc.QueryGrouped(sq.Filter)
	resp := make([]WeekdayGroupResponse, 0, len(groups))
	for _, grp := range groups {
		resp = append(resp, WeekdayGroupResponse{Label: grp.Label, Items: newItemResponses(grp.Items)})
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *scheduleApi) monthGrid(ctx echo.Context) error {
	stored := api.scheduleSvc.Filters()
	var sq SelectionQuery
	sq.Bind(ctx, stored)

	year, month := stored.ViewYear, stored.ViewMonth
	if v := ctx.QueryParam(yearParam); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: yearParam, Error: "invalid year"})
		}
		year = n
	}
	if v := ctx.QueryParam(monthParam); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 12 {
			return core.NewValidationError(nil, core.FieldError{Field: monthParam, Error: "invalid month"})
		}
		month = n
	}

	cells := api.catalogSvc.MonthGrid(sq.Filter, year, time.Month(month))
	return ctx.JSON(http.StatusOK, newDayCellResponses(cells))
}

func (api *scheduleApi) getFilters(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.scheduleSvc.Filters())
}

func (api *scheduleApi) putFilters(ctx echo.Context) error {
	var data schedule.Filters
	if err := ctx.Bind(&data); err != nil {
		return errInvalidPayload
	}
	f, err := api.scheduleSvc.SetFilters(data)
	if err != nil {
		return errors.Wrap(err, "saving filters")
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *scheduleApi) clearFilters(ctx echo.Context) error {
	f, err := api.scheduleSvc.ClearFilters()
	if err != nil {
		return errors.Wrap(err, "clearing filters")
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *scheduleApi) resetFilters(ctx echo.Context) error {
	f, err := api.scheduleSvc.Reset()
	if err != nil {
		return errors.Wrap(err, "resetting filters")
	}
	return ctx.JSON(http.StatusOK, f)
}

func (api *scheduleApi) personal(ctx echo.Context) error {
	entries, err := api.scheduleSvc.Personal()
	if err != nil {
		return errors.Wrap(err, "loading personal schedule")
	}
	if entries == nil {
		entries = []schedule.PersonalEntry{}
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *scheduleApi) importPersonal(ctx echo.Context) error {
	var data ImportRequest
	if err := ctx.Bind(&data); err != nil {
		return errInvalidPayload
	}
	entries, err := api.scheduleSvc.ImportPersonal(data.Entries)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entries)
}

func (api *scheduleApi) clearPersonal(ctx echo.Context) error {
	if err := api.scheduleSvc.ClearPersonal(); err != nil {
		return errors.Wrap(err, "clearing personal schedule")
	}
	return ctx.NoContent(http.StatusNoContent)
}
