package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/restaurant-service/internal/dto"
	"github.com/Eursukkul/restaurant-service/internal/repository"
	"github.com/labstack/echo/v4"
)

var errInvalidPage = echo.NewHTTPError(http.StatusNotFound, "Invalid page.")

// pageNumber reads the 1-based ?page= query parameter.
func pageNumber(c echo.Context) (int, error) {
	raw := c.QueryParam("page")
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errInvalidPage
	}
	return n, nil
}

func pageWindow(number, size int) repository.Page {
	return repository.Page{Offset: (number - 1) * size, Limit: size}
}

// paginate builds the list envelope. A page past the last one is an error,
// except for page 1 of an empty collection.
func paginate[T any](c echo.Context, results []T, count int64, number, size int) (dto.PageResponse[T], error) {
	last := int((count + int64(size) - 1) / int64(size))
	if last < 1 {
		last = 1
	}
	if number > last {
		return dto.PageResponse[T]{}, errInvalidPage
	}

	resp := dto.PageResponse[T]{Count: count, Results: results}
	if number < last {
		next := pageURL(c, number+1)
		resp.Next = &next
	}
	if number > 1 {
		prev := pageURL(c, number-1)
		resp.Previous = &prev
	}
	return resp, nil
}

func pageURL(c echo.Context, number int) string {
	req := c.Request()
	u := *req.URL
	q := u.Query()
	if number == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(number))
	}
	u.RawQuery = q.Encode()
	u.Scheme = c.Scheme()
	u.Host = req.Host
	return u.String()
}
