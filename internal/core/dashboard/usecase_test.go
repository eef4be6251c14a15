package dashboard

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatheractivity.app/internal/core/favorites"
	"weatheractivity.app/internal/core/weather"
	"weatheractivity.app/internal/mocks"
	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/errors"
)

type fixture struct {
	provider  *mocks.ForecastProvider
	store     *mocks.FavoritesStore
	positions *mocks.PositionSource
	uc        *UseCase
}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	return mockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		provider:  mocks.NewForecastProvider(t),
		store:     mocks.NewFavoritesStore(t),
		positions: mocks.NewPositionSource(t),
	}
	logger := setupLoggerMock(t)

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{APIKeyConfigured: true}).Maybe()
	metrics := mocks.NewLookupMetrics(t)
	metrics.EXPECT().RecordLookup(mock.Anything, mock.Anything, mock.Anything).Maybe()

	weatherUC, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: f.provider,
		Config:   config,
		Logger:   logger,
		Metrics:  metrics,
	})
	require.NoError(t, err)

	favoritesUC, err := favorites.NewUseCase(favorites.UseCaseDependencies{Store: f.store, Logger: logger})
	require.NoError(t, err)

	f.uc, err = NewUseCase(UseCaseDependencies{
		WeatherUseCase:   weatherUC,
		FavoritesUseCase: favoritesUC,
		Positions:        f.positions,
		Logger:           logger,
	})
	require.NoError(t, err)
	return f
}

func report(name string, tempC float64, condition string) *ports.ForecastReport {
	return &ports.ForecastReport{
		LocationName: name,
		Current: ports.CurrentConditions{
			TemperatureC: tempC,
			Condition:    ports.Condition{Text: condition, Icon: "//cdn.weatherapi.com/weather/64x64/day/113.png"},
		},
		Days: []ports.ForecastDayReport{
			{Date: time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC), AvgTemperatureC: tempC, Condition: ports.Condition{Text: condition}},
		},
	}
}

func TestNewUseCase_MissingDependencies(t *testing.T) {
	_, err := NewUseCase(UseCaseDependencies{})
	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_Search(t *testing.T) {
	f := newFixture(t)
	f.provider.EXPECT().GetForecast(mock.Anything, "Lisbon").Return(report("Lisbon", 24, "Sunny"), nil).Once()
	f.store.EXPECT().Load(mock.Anything).Return([]string{"London", "Lisbon"}, nil).Once()

	view := f.uc.Search(context.Background(), "  Lisbon ")

	assert.Equal(t, "Lisbon", view.Query)
	require.NotNil(t, view.Snapshot)
	assert.Equal(t, "Lisbon", view.Snapshot.Location)
	require.NotNil(t, view.Suggestion)
	assert.Equal(t, "Outdoor Adventure", view.Suggestion.Title)
	assert.Equal(t, "warm_clear", view.Rule)
	assert.Equal(t, "Current weather in Lisbon: 24°C, Sunny. Suggested activity: Outdoor Adventure - Ideal weather for outdoor activities!", view.ShareText)
	assert.Equal(t, []string{"London", "Lisbon"}, view.Favorites)
	assert.True(t, view.IsFavorite)
	assert.Empty(t, view.Error)
}

func TestUseCase_Search_Blank(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(mock.Anything).Return([]string{"London"}, nil).Once()

	view := f.uc.Search(context.Background(), "   ")

	assert.Nil(t, view.Snapshot)
	assert.Empty(t, view.Error)
	assert.Equal(t, []string{"London"}, view.Favorites)
	f.provider.AssertNotCalled(t, "GetForecast", mock.Anything, mock.Anything)
}

func TestUseCase_Search_LocationNotFound(t *testing.T) {
	f := newFixture(t)
	f.provider.EXPECT().GetForecast(mock.Anything, "Atlantis").
		Return(nil, &ports.ProviderFailure{StatusCode: 400, Code: ports.ProviderCodeLocationNotFound, Message: "No matching location found."})
	f.store.EXPECT().Load(mock.Anything).Return(nil, nil)

	view := f.uc.Search(context.Background(), "Atlantis")

	assert.Nil(t, view.Snapshot)
	assert.Nil(t, view.Suggestion)
	assert.Equal(t, weather.MsgLocationNotFound, view.Error)
	assert.False(t, view.IsFavorite)
	assert.Equal(t, []string{}, view.Favorites)
}

func TestUseCase_Search_FavoritesUnavailable(t *testing.T) {
	f := newFixture(t)
	f.provider.EXPECT().GetForecast(mock.Anything, "Oslo").Return(report("Oslo", 2, "Light snow"), nil)
	f.store.EXPECT().Load(mock.Anything).Return(nil, stderrors.New("redis: connection refused"))

	view := f.uc.Search(context.Background(), "Oslo")

	require.NotNil(t, view.Suggestion)
	assert.Equal(t, "Winter Wonderland", view.Suggestion.Title)
	assert.Equal(t, []string{}, view.Favorites)
	assert.Empty(t, view.Error)
}

func TestUseCase_Locate(t *testing.T) {
	f := newFixture(t)
	f.positions.EXPECT().CurrentPosition(mock.Anything).Return(ports.Coordinates{Latitude: 51.5, Longitude: -0.12}, nil).Once()
	f.provider.EXPECT().GetForecast(mock.Anything, "51.5,-0.12").Return(report("London", 12, "Overcast"), nil).Once()
	f.store.EXPECT().Load(mock.Anything).Return([]string{}, nil)

	view := f.uc.Locate(context.Background())

	require.NotNil(t, view.Snapshot)
	assert.Equal(t, "London", view.Snapshot.Location)
	assert.Equal(t, "Cool Weather Activities", view.Suggestion.Title)
	assert.Equal(t, NoticeCurrentLocation, view.Notice)
	assert.False(t, view.IsFavorite)
}

func TestUseCase_Locate_PositionErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "permission denied",
			err:     &ports.PositionError{Code: ports.PositionPermissionDenied},
			wantMsg: "Location access was denied. Please enable location services or search for a location manually.",
		},
		{
			name:    "unsupported",
			err:     &ports.PositionError{Code: ports.PositionUnsupported},
			wantMsg: "Geolocation is not supported by your browser. Please search for a location manually.",
		},
		{
			name:    "unclassified",
			err:     stderrors.New("boom"),
			wantMsg: "An error occurred while getting your location. Please search for a location manually.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.positions.EXPECT().CurrentPosition(mock.Anything).Return(ports.Coordinates{}, tt.err).Once()
			f.store.EXPECT().Load(mock.Anything).Return([]string{"London"}, nil)

			view := f.uc.Locate(context.Background())

			assert.Nil(t, view.Snapshot)
			assert.Empty(t, view.Notice)
			assert.Equal(t, tt.wantMsg, view.Error)
			assert.Equal(t, []string{"London"}, view.Favorites)
			f.provider.AssertNotCalled(t, "GetForecast", mock.Anything, mock.Anything)
		})
	}
}
