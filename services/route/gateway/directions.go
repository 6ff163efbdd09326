package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	httpclient "github.com/piresc/maproute/internal/pkg/http"
	"github.com/piresc/maproute/internal/pkg/logger"
	"github.com/piresc/maproute/internal/pkg/models"
	"github.com/piresc/maproute/services/route"
)

// directionsResponse is the subset of the directions payload we read
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		OverviewPolyline *models.EncodedPolyline `json:"overview_polyline"`
	} `json:"routes"`
}

// DirectionsGateway talks to the directions-style mapping endpoint
type DirectionsGateway struct {
	client        *httpclient.Client
	directionsURL string
	proxyURL      string
}

// NewDirectionsGateway creates a directions gateway from the maps config
func NewDirectionsGateway(cfg models.MapsConfig, client *httpclient.Client) *DirectionsGateway {
	return &DirectionsGateway{
		client:        client,
		directionsURL: cfg.DirectionsURL,
		proxyURL:      cfg.ProxyURL,
	}
}

// FetchPolyline requests a route through the waypoint and returns the first
// route's overview polyline
func (g *DirectionsGateway) FetchPolyline(ctx context.Context, req models.RouteRequest) (*models.EncodedPolyline, error) {
	rawURL := g.BuildURL(req)
	if _, err := url.Parse(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %v", route.ErrInvalidRequest, err)
	}

	logger.Info("Requesting directions",
		logger.String("origin", req.Origin.LatLng()),
		logger.String("waypoint", req.Waypoint.LatLng()),
		logger.String("destination", req.Destination.LatLng()),
		logger.Bool("has_api_key", req.APIKey != ""))

	resp, err := g.client.Get(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &route.TransportError{StatusCode: resp.StatusCode}
	}

	var body directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode directions response: %w", err)
	}

	if len(body.Routes) == 0 {
		logger.Warn("Directions returned no routes", logger.String("status", body.Status))
		return nil, route.ErrNoRoute
	}

	return body.Routes[0].OverviewPolyline, nil
}

// BuildURL assembles the request URL. Parameters keep the order origin,
// waypoints, destination, key and coordinates are written verbatim.
func (g *DirectionsGateway) BuildURL(req models.RouteRequest) string {
	var b strings.Builder
	b.WriteString(g.proxyURL)
	b.WriteString(g.directionsURL)
	if strings.Contains(g.directionsURL, "?") {
		b.WriteByte('&')
	} else {
		b.WriteByte('?')
	}
	b.WriteString("origin=")
	b.WriteString(req.Origin.LatLng())
	b.WriteString("&waypoints=")
	b.WriteString(req.Waypoint.LatLng())
	b.WriteString("&destination=")
	b.WriteString(req.Destination.LatLng())
	b.WriteString("&key=")
	b.WriteString(url.QueryEscape(req.APIKey))
	return b.String()
}
