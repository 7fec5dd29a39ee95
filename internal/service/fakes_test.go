package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/danceapp/events-api/internal/domain"
	"github.com/danceapp/events-api/internal/pkg/notify"
	"github.com/danceapp/events-api/internal/repository"
)

var errStorage = errors.New("storage down")

type fakeEventRepo struct {
	events  map[string]domain.Event
	tickets map[string]int

	lastPreds []domain.Predicate
	findAll   int
}

func (f *fakeEventRepo) FindByUUID(_ context.Context, id string) (domain.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) FindType(ctx context.Context, id string) (domain.EventType, error) {
	e, err := f.FindByUUID(ctx, id)
	return e.Type, err
}

func (f *fakeEventRepo) FindAll(_ context.Context, preds []domain.Predicate) ([]domain.Event, error) {
	f.findAll++
	f.lastPreds = preds
	out := make([]domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) CountTickets(_ context.Context, id string) (int, error) {
	return f.tickets[id], nil
}

type fakeBookingRepo struct {
	calls []string

	pass   *domain.Pass
	passes []domain.Pass
	rooms  []domain.Room
	food   *domain.Food
}

func (f *fakeBookingRepo) FindPass(context.Context, string) (*domain.Pass, error) {
	f.calls = append(f.calls, "pass")
	return f.pass, nil
}

func (f *fakeBookingRepo) FindPasses(context.Context, string) ([]domain.Pass, error) {
	f.calls = append(f.calls, "passes")
	return f.passes, nil
}

func (f *fakeBookingRepo) FindRooms(context.Context, string) ([]domain.Room, error) {
	f.calls = append(f.calls, "rooms")
	return f.rooms, nil
}

func (f *fakeBookingRepo) FindFood(context.Context, string) (*domain.Food, error) {
	f.calls = append(f.calls, "food")
	return f.food, nil
}

type fakeFavouriteRepo struct {
	favs      map[string]domain.FavouriteEvent
	lastPreds []domain.Predicate
}

func (f *fakeFavouriteRepo) AddFavourite(_ context.Context, userID, eventID string) (domain.FavouriteEvent, error) {
	for _, fav := range f.favs {
		if fav.UserUUID == userID && fav.EventUUID == eventID {
			return fav, nil
		}
	}
	fav := domain.FavouriteEvent{UUID: "fav-" + eventID, UserUUID: userID, EventUUID: eventID}
	f.favs[fav.UUID] = fav
	return fav, nil
}

func (f *fakeFavouriteRepo) FindFavourites(_ context.Context, userID string, preds []domain.Predicate) ([]domain.FavouriteEvent, error) {
	f.lastPreds = preds
	var out []domain.FavouriteEvent
	for _, fav := range f.favs {
		if fav.UserUUID == userID {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (f *fakeFavouriteRepo) RemoveFavourite(_ context.Context, id, userID string) error {
	fav, ok := f.favs[id]
	if !ok || fav.UserUUID != userID {
		return repository.ErrFavouriteNotFound
	}
	delete(f.favs, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]domain.User

	lastUpdate domain.UserUpdate
	createErr  error
}

func newFakeUserRepo(users ...domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]domain.User{}}
	for _, u := range users {
		r.users[u.UUID] = u
	}
	return r
}

func (f *fakeUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	user.UUID = "user-" + user.Email
	f.users[user.UUID] = user
	return user, nil
}

func (f *fakeUserRepo) FindByUUID(_ context.Context, id string) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id string, upd domain.UserUpdate) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	f.lastUpdate = upd
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	f.users[id] = u
	return u, nil
}

func (f *fakeUserRepo) UpdateFCMToken(_ context.Context, id, token string) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.FCMToken = token
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateProfileURL(_ context.Context, id, url string) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	u.ProfileURL = url
	f.users[id] = u
	return u, nil
}

type sentPush struct {
	token string
	msg   notify.Message
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentPush
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, token string, msg notify.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentPush{token: token, msg: msg})
	return f.err
}

type fakeFiles struct {
	saved   map[string]string
	deleted []string
}

func (f *fakeFiles) Save(path string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.saved[path] = string(b)
	return nil
}

func (f *fakeFiles) Delete(path string) error {
	f.deleted = append(f.deleted, path)
	delete(f.saved, path)
	return nil
}

func (f *fakeFiles) Exists(path string) bool {
	_, ok := f.saved[path]
	return ok
}

func (f *fakeFiles) URL(path string) string {
	return "/static/" + strings.TrimPrefix(path, "/")
}
