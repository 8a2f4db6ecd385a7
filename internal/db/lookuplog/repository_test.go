package lookuplog_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/localinfo-service/internal/db/lookuplog"
)

type LookupRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo lookuplog.Repository
	ctx  context.Context
}

func (s *LookupRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = lookuplog.NewRepository(s.DB)
	s.ctx = context.Background()
}

func (s *LookupRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *LookupRepositorySuite) TestLogLookup() {
	s.Run("Logs a displayed lookup", func() {
		temperature := 72.0
		lookup := lookuplog.Lookup{
			PostalCode:       "92646",
			UTCOffsetHours:   -7,
			State:            "displayed",
			Temperature:      &temperature,
			TemperatureUnit:  "F",
			ShortDescription: "Sunny",
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "local_info_lookups"`).
			WithArgs(
				"92646",
				-7,
				"displayed",
				"",
				"",
				&temperature,
				"F",
				"Sunny",
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogLookup(s.ctx, lookup)

		s.Require().NoError(err)
	})

	s.Run("Logs a failed lookup without conditions", func() {
		lookup := lookuplog.Lookup{
			PostalCode:     "00000",
			UTCOffsetHours: 0,
			State:          "failed",
			Stage:          "geocoding",
			Kind:           "invalid_postal_code",
			CreatedAt:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "local_info_lookups"`).
			WithArgs(
				"00000",
				0,
				"failed",
				"geocoding",
				"invalid_postal_code",
				nil,
				"",
				"",
				lookup.CreatedAt,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		s.mock.ExpectCommit()

		err := s.repo.LogLookup(s.ctx, lookup)

		s.Require().NoError(err)
	})

	s.Run("Returns error when database operation fails", func() {
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "local_info_lookups"`).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogLookup(s.ctx, lookuplog.Lookup{PostalCode: "10001", State: "failed"})

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *LookupRepositorySuite) TestGetRecentLookup() {
	queryRegex := `SELECT \* FROM "local_info_lookups" WHERE postal_code = \$1 ORDER BY created_at DESC,"local_info_lookups"."id" LIMIT \$2`

	s.Run("Retrieves the most recent lookup", func() {
		createdAt := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "postal_code", "utc_offset_hours", "state", "stage", "kind",
			"temperature", "temperature_unit", "short_description", "created_at",
		}).AddRow(
			7, "60601", -6, "no_data", "fetching_conditions", "no_forecast_data",
			nil, "", "", createdAt,
		)

		s.mock.ExpectQuery(queryRegex).
			WithArgs("60601", 1).
			WillReturnRows(rows)

		result, err := s.repo.GetRecentLookup(s.ctx, "60601")

		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.Require().Equal(uint(7), result.ID)
		s.Require().Equal("60601", result.PostalCode)
		s.Require().Equal(-6, result.UTCOffsetHours)
		s.Require().Equal("no_data", result.State)
		s.Require().Equal("no_forecast_data", result.Kind)
		s.Require().Nil(result.Temperature)
	})

	s.Run("Returns error when no record found", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("99999", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		result, err := s.repo.GetRecentLookup(s.ctx, "99999")

		s.Require().ErrorIs(err, gorm.ErrRecordNotFound)
		s.Require().Nil(result)
	})

	s.Run("Returns error when database query fails", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs("30301", 1).
			WillReturnError(errors.New("connection error"))

		result, err := s.repo.GetRecentLookup(s.ctx, "30301")

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(result)
	})
}

func TestLookupRepositorySuite(t *testing.T) {
	suite.Run(t, new(LookupRepositorySuite))
}
