package gmaps

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// NearbySearch performs one nearby-search call. ZERO_RESULTS is an empty
// page, not an error.
func (c *Client) NearbySearch(ctx context.Context, q NearbyQuery) (NearbyPage, error) {
	params := url.Values{}
	if q.PageToken != "" {
		params.Set("pagetoken", q.PageToken)
	} else {
		params.Set("location", fmt.Sprintf("%f,%f", q.Location.Lat, q.Location.Lng))
		params.Set("radius", strconv.Itoa(q.RadiusMeters))
		params.Set("type", q.Category)
	}

	var payload nearbyResponse
	if err := c.get(ctx, nearbyEndpoint, params, &payload); err != nil {
		return NearbyPage{}, err
	}

	switch payload.Status {
	case "OK":
		return NearbyPage{Results: payload.Results, NextPageToken: payload.NextPageToken}, nil
	case "ZERO_RESULTS":
		return NearbyPage{}, nil
	default:
		c.logger.Warn("nearby search failed",
			zap.String("category", q.Category),
			zap.String("status", payload.Status))
		return NearbyPage{}, &StatusError{Status: payload.Status, Message: payload.ErrorMessage}
	}
}

// SearchAllPages follows next_page_token up to maxPages pages. The provider
// needs a short delay before a fresh token becomes valid, so between pages we
// wait pageDelay (cancellable via ctx) and retry an INVALID_REQUEST answer up
// to pageRetries times. A failed later page degrades to the results fetched
// so far.
func (c *Client) SearchAllPages(ctx context.Context, q NearbyQuery, maxPages int) ([]PlaceResult, error) {
	first, err := c.NearbySearch(ctx, q)
	if err != nil {
		return nil, err
	}

	all := first.Results
	token := first.NextPageToken

	for page := 1; page < maxPages && token != ""; page++ {
		q.PageToken = token

		var pg NearbyPage
		for attempt := 0; ; attempt++ {
			if werr := sleepCtx(ctx, c.pageDelay); werr != nil {
				return all, werr
			}
			pg, err = c.NearbySearch(ctx, q)

			var se *StatusError
			if err != nil && errors.As(err, &se) && se.Status == "INVALID_REQUEST" && attempt < c.pageRetries {
				continue
			}
			break
		}
		if err != nil {
			c.logger.Warn("pagination aborted", zap.Int("page", page), zap.Error(err))
			break
		}

		all = append(all, pg.Results...)
		token = pg.NextPageToken
	}

	return all, nil
}
