package persistent

import (
	"testing"
	"time"

	"snake-arena/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func userRow(highScore, gamesPlayed int) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "username", "email", "password", "avatar",
		"high_score", "games_played", "created_at", "updated_at",
	}).AddRow("u1", "SnakeMaster", "snakemaster@game.com", "hash", "", highScore, gamesPlayed, now, now)
}

func TestSubmit_CountersMoveInSQL(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLeaderboardRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnRows(userRow(100, 5))
	mock.ExpectExec(`INSERT INTO "leaderboard_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	// The increment and the max run in the database, never on values read
	// earlier in the transaction: a concurrent submit for the same user
	// must not lose an increment or regress the high score.
	mock.ExpectExec(`UPDATE "users" SET .*"games_played"=games_played \+ 1.*"high_score"=GREATEST\(high_score, \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnRows(userRow(200, 6))
	mock.ExpectCommit()

	entry := &entity.LeaderboardEntry{
		UserID:   "u1",
		Username: "SnakeMaster",
		Score:    200,
		Mode:     entity.ModePassThrough,
	}
	user, err := repo.Submit(entry)
	assert.NoError(t, err)
	assert.Equal(t, 200, user.HighScore)
	assert.Equal(t, 6, user.GamesPlayed)
	assert.NotEmpty(t, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_LesserScoreKeepsHighScore(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLeaderboardRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnRows(userRow(100, 5))
	mock.ExpectExec(`INSERT INTO "leaderboard_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "users" SET .*"games_played"=games_played \+ 1.*"high_score"=GREATEST\(high_score, \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnRows(userRow(100, 6))
	mock.ExpectCommit()

	entry := &entity.LeaderboardEntry{
		UserID:   "u1",
		Username: "SnakeMaster",
		Score:    40,
		Mode:     entity.ModeWalls,
	}
	user, err := repo.Submit(entry)
	assert.NoError(t, err)
	assert.Equal(t, 100, user.HighScore)
	assert.Equal(t, 6, user.GamesPlayed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_UnknownUserRollsBack(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewLeaderboardRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).WillReturnError(gorm.ErrRecordNotFound)
	mock.ExpectRollback()

	entry := &entity.LeaderboardEntry{UserID: "missing", Score: 10, Mode: entity.ModeWalls}
	_, err := repo.Submit(entry)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
