package providers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"ulascansenturk/localinfo-service/internal/providers"
)

const testClientIdentifier = "localinfo-test (ops@example.com)"

type ProvidersTestSuite struct {
	suite.Suite
	geocodeServer   *httptest.Server
	gridPointServer *httptest.Server
	forecastServer  *httptest.Server

	geocoder   providers.Geocoder
	locator    providers.ForecastLocator
	conditions providers.ConditionsFetcher

	mu                sync.Mutex
	lastGeocodeQuery  map[string]string
	lastGridPointPath string
	userAgents        []string
	ctx               context.Context
}

func (s *ProvidersTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.userAgents = nil

	s.geocodeServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		s.record(r, func() {
			s.lastGeocodeQuery = map[string]string{
				"q":            q.Get("q"),
				"format":       q.Get("format"),
				"limit":        q.Get("limit"),
				"countrycodes": q.Get("countrycodes"),
			}
		})

		switch q.Get("q") {
		case "92646":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"lat": "33.6658", "lon": "-117.9690", "display_name": "Huntington Beach"},
			})
		case "10001":
			json.NewEncoder(w).Encode([]map[string]interface{}{
				{"lat": 40.7506, "lon": -73.9972},
			})
		case "00000":
			json.NewEncoder(w).Encode([]map[string]interface{}{})
		case "11111":
			json.NewEncoder(w).Encode([]map[string]interface{}{{"display_name": "nowhere"}})
		case "22222":
			w.Write([]byte("{malformed json"))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	s.forecastServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r, nil)

		switch r.URL.Path {
		case "/gridpoints/LOX/150,36/forecast/hourly":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"properties": map[string]interface{}{
					"periods": []map[string]interface{}{
						{"temperature": 72, "temperatureUnit": "F", "shortForecast": "Sunny"},
						{"temperature": 70, "temperatureUnit": "F", "shortForecast": "Mostly Sunny"},
					},
				},
			})
		case "/empty":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"properties": map[string]interface{}{"periods": []interface{}{}},
			})
		case "/absent":
			json.NewEncoder(w).Encode(map[string]interface{}{"properties": map[string]interface{}{}})
		case "/malformed":
			w.Write([]byte("not json"))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))

	s.gridPointServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r, func() {
			s.lastGridPointPath = r.URL.Path
		})

		switch strings.TrimPrefix(r.URL.Path, "/points/") {
		case "33.6658,-117.9690":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"properties": map[string]interface{}{
					"forecastHourly": s.forecastServer.URL + "/gridpoints/LOX/150,36/forecast/hourly",
				},
			})
		case "0,0":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"properties": map[string]interface{}{"forecast": "https://example.com/daily"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	cfg := providers.Config{
		GeocodeBaseURL:   s.geocodeServer.URL + "/search",
		GridPointBaseURL: s.gridPointServer.URL + "/points/",
		ClientIdentifier: testClientIdentifier,
	}
	client := providers.NewHTTPClient(2 * time.Second)

	s.geocoder = providers.NewGeocoder(cfg, client)
	s.locator = providers.NewForecastLocator(cfg, client)
	s.conditions = providers.NewConditionsFetcher(cfg, client)
}

func (s *ProvidersTestSuite) record(r *http.Request, extra func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userAgents = append(s.userAgents, r.Header.Get("User-Agent"))
	if extra != nil {
		extra()
	}
}

func (s *ProvidersTestSuite) TearDownTest() {
	s.geocodeServer.Close()
	s.gridPointServer.Close()
	s.forecastServer.Close()
}

func (s *ProvidersTestSuite) TestGeocode_Success() {
	coords, err := s.geocoder.Geocode(s.ctx, "92646")
	s.NoError(err)
	s.Equal(providers.Coordinates{Latitude: "33.6658", Longitude: "-117.9690"}, coords)

	s.Equal(map[string]string{
		"q":            "92646",
		"format":       "json",
		"limit":        "1",
		"countrycodes": "us",
	}, s.lastGeocodeQuery)
	s.Equal([]string{testClientIdentifier}, s.userAgents)
}

func (s *ProvidersTestSuite) TestGeocode_NumericCoordinates() {
	coords, err := s.geocoder.Geocode(s.ctx, "10001")
	s.NoError(err)
	s.Equal("40.7506", coords.Latitude)
	s.Equal("-73.9972", coords.Longitude)
}

func (s *ProvidersTestSuite) TestGeocode_NoMatch() {
	_, err := s.geocoder.Geocode(s.ctx, "00000")
	s.ErrorIs(err, providers.ErrNoMatch)
}

func (s *ProvidersTestSuite) TestGeocode_ResultWithoutCoordinates() {
	_, err := s.geocoder.Geocode(s.ctx, "11111")
	s.Error(err)
	s.NotErrorIs(err, providers.ErrNoMatch)
}

func (s *ProvidersTestSuite) TestGeocode_MalformedJSON() {
	_, err := s.geocoder.Geocode(s.ctx, "22222")
	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
}

func (s *ProvidersTestSuite) TestGeocode_ServerError() {
	_, err := s.geocoder.Geocode(s.ctx, "99999")
	s.Error(err)
	s.Contains(err.Error(), "status code")

	var statusErr *providers.StatusError
	s.True(errors.As(err, &statusErr))
	s.Equal(http.StatusInternalServerError, statusErr.StatusCode)
	s.NotErrorIs(err, providers.ErrNoMatch)
}

func (s *ProvidersTestSuite) TestGeocode_TransportFailure() {
	s.geocodeServer.Close()

	_, err := s.geocoder.Geocode(s.ctx, "92646")
	s.Error(err)
	s.Contains(err.Error(), "request failed")
}

func (s *ProvidersTestSuite) TestGeocode_CanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.geocoder.Geocode(ctx, "92646")
	s.ErrorIs(err, context.Canceled)
}

func (s *ProvidersTestSuite) TestLocateForecast_Success() {
	endpoint, err := s.locator.LocateForecast(s.ctx, providers.Coordinates{Latitude: "33.6658", Longitude: "-117.9690"})
	s.NoError(err)
	s.Equal(s.forecastServer.URL+"/gridpoints/LOX/150,36/forecast/hourly", endpoint)
	s.Equal("/points/33.6658,-117.9690", s.lastGridPointPath)
	s.Equal([]string{testClientIdentifier}, s.userAgents)
}

func (s *ProvidersTestSuite) TestLocateForecast_EndpointMissing() {
	_, err := s.locator.LocateForecast(s.ctx, providers.Coordinates{Latitude: "0", Longitude: "0"})
	s.ErrorIs(err, providers.ErrForecastEndpointMissing)
}

func (s *ProvidersTestSuite) TestLocateForecast_ServerError() {
	_, err := s.locator.LocateForecast(s.ctx, providers.Coordinates{Latitude: "1", Longitude: "1"})
	s.Error(err)
	s.Contains(err.Error(), "status code: 404")
	s.NotErrorIs(err, providers.ErrForecastEndpointMissing)
}

func (s *ProvidersTestSuite) TestFetchConditions_Success() {
	conditions, err := s.conditions.FetchConditions(s.ctx, s.forecastServer.URL+"/gridpoints/LOX/150,36/forecast/hourly")
	s.NoError(err)
	s.Equal(providers.CurrentConditions{
		Temperature:      72,
		TemperatureUnit:  "F",
		ShortDescription: "Sunny",
	}, conditions)
	s.Equal([]string{testClientIdentifier}, s.userAgents)
}

func (s *ProvidersTestSuite) TestFetchConditions_EmptyPeriods() {
	_, err := s.conditions.FetchConditions(s.ctx, s.forecastServer.URL+"/empty")
	s.ErrorIs(err, providers.ErrNoPeriods)
}

func (s *ProvidersTestSuite) TestFetchConditions_AbsentPeriods() {
	_, err := s.conditions.FetchConditions(s.ctx, s.forecastServer.URL+"/absent")
	s.ErrorIs(err, providers.ErrNoPeriods)
}

func (s *ProvidersTestSuite) TestFetchConditions_MalformedJSON() {
	_, err := s.conditions.FetchConditions(s.ctx, s.forecastServer.URL+"/malformed")
	s.Error(err)
	s.Contains(err.Error(), "malformed JSON")
	s.NotErrorIs(err, providers.ErrNoPeriods)
}

func (s *ProvidersTestSuite) TestFetchConditions_ServerError() {
	_, err := s.conditions.FetchConditions(s.ctx, s.forecastServer.URL+"/down")
	s.Error(err)
	s.Contains(err.Error(), "status code: 503")
}

func (s *ProvidersTestSuite) TestFetchConditions_InvalidEndpoint() {
	_, err := s.conditions.FetchConditions(s.ctx, "://not a url")
	s.Error(err)
	s.Contains(err.Error(), "could not be built")
}

func TestProvidersSuite(t *testing.T) {
	suite.Run(t, new(ProvidersTestSuite))
}
