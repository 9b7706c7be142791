package game

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

// In-memory fakes mimicking the repository contracts, including the atomic
// cap semantics of InsertAttempt. The db arguments are ignored.

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{ repository.DB }

func (fakeDB) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeMessages struct {
	byID map[uuid.UUID]domain.Message
	list []domain.Message
}

func newFakeMessages(msgs ...domain.Message) *fakeMessages {
	f := &fakeMessages{byID: make(map[uuid.UUID]domain.Message)}
	for _, m := range msgs {
		f.byID[m.ID] = m
		f.list = append(f.list, m)
	}
	return f
}

func (f *fakeMessages) Create(_ context.Context, _ repository.DBTX, msg *domain.Message) error {
	f.byID[msg.ID] = *msg
	f.list = append(f.list, *msg)
	return nil
}

func (f *fakeMessages) FindByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (*domain.Message, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (f *fakeMessages) ListFor(_ context.Context, _ repository.DBTX, username string, dir repository.MessageDirection) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.list {
		if (dir == repository.DirectionTo && m.ToUsername == username) ||
			(dir == repository.DirectionFrom && m.FromUsername == username) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMessages) ListAll(context.Context, repository.DBTX) ([]domain.Message, error) {
	return append([]domain.Message(nil), f.list...), nil
}

func (f *fakeMessages) DeleteByID(_ context.Context, _ repository.DBTX, id uuid.UUID) (bool, error) {
	_, ok := f.byID[id]
	delete(f.byID, id)
	return ok, nil
}

type fakeGuesses struct {
	rows       []domain.Guess
	dupOnce    bool
	alwaysDup  bool
	insertErr  error
}

func (f *fakeGuesses) pairCount(messageID uuid.UUID, guesser string) int {
	n := 0
	for _, g := range f.rows {
		if g.MessageID == messageID && g.GuesserUsername == guesser {
			n++
		}
	}
	return n
}

func (f *fakeGuesses) InsertAttempt(_ context.Context, _ repository.DBTX, g *domain.Guess) (*domain.Guess, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	count := f.pairCount(g.MessageID, g.GuesserUsername)
	if count >= domain.MaxGuessAttempts {
		return nil, nil
	}
	if f.alwaysDup {
		return nil, repository.ErrDuplicateAttempt
	}
	if f.dupOnce {
		f.dupOnce = false
		return nil, repository.ErrDuplicateAttempt
	}
	g.AttemptNo = count + 1
	g.CreatedAt = time.Now()
	f.rows = append(f.rows, *g)
	return g, nil
}

func (f *fakeGuesses) ListByGuesser(_ context.Context, _ repository.DBTX, guesser string) ([]domain.Guess, error) {
	var out []domain.Guess
	for _, g := range f.rows {
		if g.GuesserUsername == guesser {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGuesses) CountForPair(_ context.Context, _ repository.DBTX, messageID uuid.UUID, guesser string) (int, error) {
	return f.pairCount(messageID, guesser), nil
}

func (f *fakeGuesses) ListCorrect(context.Context, repository.DBTX) ([]domain.Guess, error) {
	var out []domain.Guess
	for _, g := range f.rows {
		if g.IsCorrect {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeUsers struct {
	byName map[string]domain.User
}

func newFakeUsers(users ...domain.User) *fakeUsers {
	f := &fakeUsers{byName: make(map[string]domain.User)}
	for _, u := range users {
		f.byName[u.Username] = u
	}
	return f
}

func (f *fakeUsers) FindByUsername(_ context.Context, _ repository.DBTX, username string) (*domain.User, error) {
	u, ok := f.byName[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUsers) List(context.Context, repository.DBTX) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.byName {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) Exists(_ context.Context, _ repository.DBTX, username string) (bool, error) {
	_, ok := f.byName[username]
	return ok, nil
}

func (f *fakeUsers) Create(_ context.Context, _ repository.DBTX, user *domain.User) error {
	f.byName[user.Username] = *user
	return nil
}

func (f *fakeUsers) Upsert(_ context.Context, _ repository.DBTX, user *domain.User) error {
	f.byName[user.Username] = *user
	return nil
}

func (f *fakeUsers) Delete(_ context.Context, _ repository.DBTX, username string) (bool, error) {
	_, ok := f.byName[username]
	delete(f.byName, username)
	return ok, nil
}

func (f *fakeUsers) UpdateAvatar(_ context.Context, _ repository.DBTX, username, avatar string) error {
	u := f.byName[username]
	u.Avatar = avatar
	f.byName[username] = u
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, _ repository.DBTX, username, hash string) error {
	u := f.byName[username]
	u.PasswordHash = hash
	f.byName[username] = u
	return nil
}

type fakeOutbox struct {
	drafts []domain.OutboxDraft
}

func (f *fakeOutbox) Insert(_ context.Context, _ repository.DBTX, draft domain.OutboxDraft) error {
	f.drafts = append(f.drafts, draft)
	return nil
}

func (f *fakeOutbox) FetchUnpublished(context.Context, repository.DBTX, int) ([]repository.OutboxRow, error) {
	return nil, nil
}

func (f *fakeOutbox) MarkPublished(context.Context, repository.DBTX, []int64) error {
	return nil
}
