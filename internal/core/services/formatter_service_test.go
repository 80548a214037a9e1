package services_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/SscSPs/display_helpers/internal/apperrors"
	portssvc "github.com/SscSPs/display_helpers/internal/core/ports/services"
	"github.com/SscSPs/display_helpers/internal/core/services"
	"github.com/SscSPs/display_helpers/internal/utils"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type FormatterServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	service portssvc.FormatterSvcFacade
}

func (suite *FormatterServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.UnixMilli(1709640000000)
	counter := uint64(0)
	generator := &utils.IDGenerator{
		Now: func() time.Time { return suite.now },
		Rand: func() uint64 {
			counter++
			return counter << 40
		},
	}
	suite.service = services.NewFormatterService(
		services.WithIDGenerator(generator),
		services.WithLocation(time.FixedZone("UTC-5", -5*60*60)),
		services.WithMaxBatchSize(3),
	)
}

// --- Test Cases ---

func (suite *FormatterServiceTestSuite) TestFormatCurrency_Valid() {
	got := suite.service.FormatCurrency(suite.ctx, 1234.5)

	suite.True(got.Valid)
	suite.Equal("$1,234.50", got.Formatted)
	suite.Equal("1234.5", got.Rounded)
	suite.Equal(1234.5, got.Input)
}

func (suite *FormatterServiceTestSuite) TestFormatCurrency_NotANumber() {
	got := suite.service.FormatCurrency(suite.ctx, "abc")

	suite.False(got.Valid)
	suite.Equal(utils.CurrencyNaN, got.Formatted)
	suite.Empty(got.Rounded)
}

func (suite *FormatterServiceTestSuite) TestFormatCurrency_HugeExponent() {
	got := suite.service.FormatCurrency(suite.ctx, "1e2000000000")

	suite.False(got.Valid)
	suite.Equal("$∞", got.Formatted)
	suite.Empty(got.Rounded)

	got = suite.service.FormatCurrency(suite.ctx, "-1e-2000000000")

	suite.True(got.Valid)
	suite.Equal("-$0.00", got.Formatted)
	suite.Equal("0", got.Rounded)
}

func (suite *FormatterServiceTestSuite) TestFormatCurrencyBatch_KeepsOrder() {
	batch, err := suite.service.FormatCurrencyBatch(suite.ctx, []any{1, "x", "2.5"})

	suite.Require().NoError(err)
	suite.Require().Len(batch.Items, 3)
	suite.Equal("$1.00", batch.Items[0].Formatted)
	suite.False(batch.Items[1].Valid)
	suite.Equal("$2.50", batch.Items[2].Formatted)
}

func (suite *FormatterServiceTestSuite) TestFormatCurrencyBatch_TooLarge() {
	batch, err := suite.service.FormatCurrencyBatch(suite.ctx, []any{1, 2, 3, 4})

	suite.Nil(batch)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FormatterServiceTestSuite) TestFormatDate_UsesConfiguredLocation() {
	// 02:00 UTC is the previous evening five hours west.
	got := suite.service.FormatDate(suite.ctx, "2024-03-05T02:00:00Z")

	suite.True(got.Valid)
	suite.Equal("04 de marzo de 2024", got.Formatted)
	suite.Empty(got.Rounded)
}

func (suite *FormatterServiceTestSuite) TestFormatDate_Invalid() {
	got := suite.service.FormatDate(suite.ctx, "not-a-date")

	suite.False(got.Valid)
	suite.Equal(utils.InvalidDate, got.Formatted)
}

func (suite *FormatterServiceTestSuite) TestFormatDateBatch_Empty() {
	_, err := suite.service.FormatDateBatch(suite.ctx, nil)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FormatterServiceTestSuite) TestGenerateIDs_Distinct() {
	ids, err := suite.service.GenerateIDs(suite.ctx, 3)

	suite.Require().NoError(err)
	suite.Require().Len(ids, 3)
	timePart := strconv.FormatInt(suite.now.UnixMilli(), 36)
	seen := map[string]bool{}
	for _, id := range ids {
		suite.Regexp(`^[0-9a-z]+`+timePart+`$`, id)
		suite.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func (suite *FormatterServiceTestSuite) TestGenerateIDs_OutOfRange() {
	_, err := suite.service.GenerateIDs(suite.ctx, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GenerateIDs(suite.ctx, 4)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Test Suite ---
func TestFormatterService(t *testing.T) {
	suite.Run(t, new(FormatterServiceTestSuite))
}
