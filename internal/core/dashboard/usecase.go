// Package dashboard composes a weather lookup, its activity suggestion and the
// saved locations into one view.
package dashboard

import (
	"context"
	stderrors "errors"

	"weatheractivity.app/internal/core/activity"
	"weatheractivity.app/internal/core/favorites"
	"weatheractivity.app/internal/core/weather"
	"weatheractivity.app/internal/ports"
	"weatheractivity.app/pkg/errors"
	"weatheractivity.app/pkg/validation"
)

// NoticeCurrentLocation is shown when the view was built from the caller's position
const NoticeCurrentLocation = "Showing weather for your current location"

// View is everything the dashboard renders. Snapshot and Suggestion are nil when
// no lookup ran or it failed; Error then carries the user-facing message.
type View struct {
	Query      string
	Snapshot   *weather.Snapshot
	Suggestion *activity.Suggestion
	Rule       string
	ShareText  string
	Favorites  []string
	IsFavorite bool
	Error      string
	Notice     string
}

type UseCase struct {
	weatherUseCase   *weather.UseCase
	favoritesUseCase *favorites.UseCase
	positions        ports.PositionSource
	logger           ports.Logger
}

type UseCaseDependencies struct {
	WeatherUseCase   *weather.UseCase
	FavoritesUseCase *favorites.UseCase
	Positions        ports.PositionSource
	Logger           ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherUseCase == nil {
		return nil, errors.NewValidationError("weather use case is required")
	}
	if deps.FavoritesUseCase == nil {
		return nil, errors.NewValidationError("favorites use case is required")
	}
	if deps.Positions == nil {
		return nil, errors.NewValidationError("position source is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weatherUseCase:   deps.WeatherUseCase,
		favoritesUseCase: deps.FavoritesUseCase,
		positions:        deps.Positions,
		logger:           deps.Logger,
	}, nil
}

// Home returns a view with the saved locations and no lookup
func (uc *UseCase) Home(ctx context.Context) *View {
	view := &View{}
	uc.attachFavorites(ctx, view)
	return view
}

// Search looks up a place by name. A blank name performs no lookup.
func (uc *UseCase) Search(ctx context.Context, location string) *View {
	name, ok := validation.TrimAndValidate(location)
	if !ok {
		return uc.Home(ctx)
	}

	view := &View{Query: name}
	uc.lookup(ctx, view, weather.ByName{Query: name})
	uc.attachFavorites(ctx, view)
	return view
}

// Locate asks the position source once and looks up the reported coordinates
func (uc *UseCase) Locate(ctx context.Context) *View {
	view := &View{}

	coords, err := uc.positions.CurrentPosition(ctx)
	if err != nil {
		var posErr *ports.PositionError
		if !stderrors.As(err, &posErr) {
			posErr = &ports.PositionError{Code: ports.PositionUnknown}
		}
		uc.logger.Warn("Current position unavailable", ports.F("error", err))
		view.Error = posErr.Error()
		uc.attachFavorites(ctx, view)
		return view
	}

	uc.lookup(ctx, view, weather.ByCoordinates{Latitude: coords.Latitude, Longitude: coords.Longitude})
	if view.Snapshot != nil {
		view.Notice = NoticeCurrentLocation
	}
	uc.attachFavorites(ctx, view)
	return view
}

func (uc *UseCase) lookup(ctx context.Context, view *View, request weather.LookupRequest) {
	snapshot, err := uc.weatherUseCase.Lookup(ctx, request)
	if err != nil {
		view.Error = userMessage(err)
		return
	}

	suggestion := activity.Suggest(snapshot)
	view.Rule = activity.RuleName(activity.FromSnapshot(snapshot))
	uc.logger.Debug("Activity suggested",
		ports.F("location", snapshot.Location),
		ports.F("rule", view.Rule))

	view.Snapshot = snapshot
	view.Suggestion = &suggestion
	view.ShareText = activity.ShareText(snapshot, suggestion)
}

func (uc *UseCase) attachFavorites(ctx context.Context, view *View) {
	list, err := uc.favoritesUseCase.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to load favorites", ports.F("error", err))
		view.Favorites = []string{}
		return
	}

	view.Favorites = list
	if view.Snapshot == nil {
		return
	}
	for _, l := range list {
		if l == view.Snapshot.Location {
			view.IsFavorite = true
			return
		}
	}
}

func userMessage(err error) string {
	if appErr, ok := errors.As(err); ok {
		return appErr.Message
	}
	return weather.MsgFetchFailed
}
