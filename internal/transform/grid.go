package transform

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/seatmap/seatmap-editor/backend-go/internal/document"
	"github.com/seatmap/seatmap-editor/backend-go/internal/typeid"
)

// ErrInvalidGrid is returned for grid options that cannot be laid out.
var ErrInvalidGrid = errors.New("invalid grid options")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// GridOptions describes a block of seats laid out row by row. Groups holds
// the seat count of each column group; an aisle separates adjacent groups.
type GridOptions struct {
	Rows               int      `json:"rows" validate:"gt=0,lte=5000"`
	Groups             []int    `json:"groups" validate:"required,min=1,max=100,dive,gt=0,lte=5000"`
	StartX             float64  `json:"startX" validate:"gte=0,lte=1"`
	StartY             float64  `json:"startY" validate:"gte=0,lte=1"`
	SpacingX           float64  `json:"spacingX" validate:"gte=0"`
	SpacingY           float64  `json:"spacingY" validate:"gte=0"`
	SeatW              float64  `json:"seatW" validate:"omitempty,gte=0.005,lte=0.5"`
	SeatH              float64  `json:"seatH" validate:"omitempty,gte=0.005,lte=0.5"`
	AisleWidth         float64  `json:"aisleWidth" validate:"gte=0"`
	StartRowNumber     int      `json:"startRowNumber" validate:"gte=0"`
	SkipThirteen       bool     `json:"skipThirteen"`
	ColumnLabels       []string `json:"columnLabels,omitempty"`
	CategoryID         string   `json:"categoryId,omitempty"`
	FirstRowCategoryID string   `json:"firstRowCategoryId,omitempty"`
}

// DefaultGridOptions returns a ten row 3-3 block starting near the top left.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Rows:           10,
		Groups:         []int{3, 3},
		StartX:         0.1,
		StartY:         0.1,
		SpacingX:       0.03,
		SpacingY:       0.04,
		SeatW:          document.DefaultSeatSize,
		SeatH:          document.DefaultSeatSize,
		AisleWidth:     document.DefaultAisleWidth,
		StartRowNumber: 1,
		CategoryID:     document.CategoryStandard,
	}
}

// Validate rejects options Grid cannot lay out: no rows, an empty or
// non-positive column group, or a seat size outside the schema bounds. A
// zero seat size passes so callers can fill in their default first.
func (o GridOptions) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate grid: %w", err)
	}
	fe := verrs[0]
	if fe.Param() == "" {
		return fmt.Errorf("%w: %s failed %s", ErrInvalidGrid, fieldPath(fe.Namespace()), fe.Tag())
	}
	return fmt.Errorf("%w: %s failed %s=%s", ErrInvalidGrid, fieldPath(fe.Namespace()), fe.Tag(), fe.Param())
}

func fieldPath(ns string) string {
	_, rest, found := strings.Cut(ns, ".")
	if !found {
		return ns
	}
	return rest
}

// ParsePattern reads a layout such as "3-3" or "2-4-2". Parts that are not
// positive integers are dropped.
func ParsePattern(pattern string) []int {
	var groups []int
	if strings.TrimSpace(pattern) == "" {
		return groups
	}
	for _, part := range strings.Split(pattern, "-") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			continue
		}
		groups = append(groups, n)
	}
	return groups
}

// TotalColumns sums the group sizes.
func (o GridOptions) TotalColumns() int {
	total := 0
	for _, g := range o.Groups {
		total += g
	}
	return total
}

// SeatCount is the number of seats Grid would produce.
func (o GridOptions) SeatCount() int {
	total := o.TotalColumns()
	if o.Rows <= 0 || total <= 0 {
		return 0
	}
	return o.Rows * total
}

// GridResult holds the generated seats plus the grid config that describes
// them.
type GridResult struct {
	Seats             []document.Seat
	ColumnLabels      []string
	AisleAfterColumns []int
}

// Grid generates seats row-major, left to right within each group, adding
// AisleWidth between groups. Row numbers start at StartRowNumber; with
// SkipThirteen the number 13 is never used. Seat labels are the column
// label followed by the row number.
func Grid(o GridOptions) GridResult {
	total := o.TotalColumns()
	if total <= 0 {
		return GridResult{}
	}
	for _, g := range o.Groups {
		if g <= 0 {
			return GridResult{}
		}
	}
	labels := o.ColumnLabels
	if len(labels) == 0 {
		labels = document.DefaultColumnLabels()
	}
	if len(labels) > total {
		labels = labels[:total]
	}

	res := GridResult{
		ColumnLabels:      append([]string(nil), labels...),
		AisleAfterColumns: aisleAfterColumns(o.Groups),
	}
	if o.Rows <= 0 {
		return res
	}

	res.Seats = make([]document.Seat, 0, o.Rows*total)
	rowNumber := o.StartRowNumber
	for row := 0; row < o.Rows; row++ {
		if o.SkipThirteen && rowNumber == 13 {
			rowNumber++
		}

		category := o.CategoryID
		if row == 0 && o.FirstRowCategoryID != "" {
			category = o.FirstRowCategoryID
		}

		col := 0
		x := o.StartX
		for g, size := range o.Groups {
			if g > 0 {
				x += o.AisleWidth
			}
			for i := 0; i < size; i++ {
				res.Seats = append(res.Seats, document.Seat{
					ID:         typeid.NewSeatID(),
					Label:      columnLabel(labels, col) + strconv.Itoa(rowNumber),
					X:          x + float64(i)*o.SpacingX,
					Y:          o.StartY + float64(row)*o.SpacingY,
					W:          o.SeatW,
					H:          o.SeatH,
					Row:        document.Ptr(rowNumber),
					Column:     document.Ptr(col),
					CategoryID: category,
					Status:     document.StatusAvailable,
				})
				col++
			}
			x += float64(size) * o.SpacingX
		}
		rowNumber++
	}
	return res
}

// UsedCategories lists the category ids the grid assigns, first row first.
func (o GridOptions) UsedCategories() []string {
	var ids []string
	if o.FirstRowCategoryID != "" {
		ids = append(ids, o.FirstRowCategoryID)
	}
	if o.CategoryID != "" && o.CategoryID != o.FirstRowCategoryID {
		ids = append(ids, o.CategoryID)
	}
	return ids
}

func columnLabel(labels []string, col int) string {
	if col < len(labels) && labels[col] != "" {
		return labels[col]
	}
	return strconv.Itoa(col + 1)
}

// aisleAfterColumns returns the zero-based index of the last column of every
// group except the final one.
func aisleAfterColumns(groups []int) []int {
	var out []int
	total := 0
	for i, g := range groups {
		total += g
		if i < len(groups)-1 {
			out = append(out, total-1)
		}
	}
	return out
}
