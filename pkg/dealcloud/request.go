package dealcloud

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator"
)

// ActivityFilter narrows the rows returned by the user activity report.
// A nil pointer or an empty UserIDs slice means "not supplied" and the field
// is left out of the request, so the server applies its own default.
type ActivityFilter struct {
	UserIDs        []int64
	DateFrom       *string
	DateTo         *string
	Activity       *int
	Source         *int
	ExportDataType *int
}

// PageRequest selects a page of the report. The server defaults to page 1
// with 10 rows when a field is not supplied.
type PageRequest struct {
	PageNumber *int
	PageSize   *int
}

// ActivityRequest is a validated report request ready to be sent.
type ActivityRequest struct {
	Body  map[string]any
	Query url.Values
}

// Int returns a pointer to v, for populating optional request fields.
func Int(v int) *int {
	return &v
}

// String returns a pointer to v, for populating optional request fields.
func String(v string) *string {
	return &v
}

var validate = validator.New()

// Validate checks every supplied field and returns the first violation as a
// *ValidationError.
func (f ActivityFilter) Validate() error {
	if len(f.UserIDs) > 0 {
		if err := checkVar("user_ids", f.UserIDs, "dive,gt=0"); err != nil {
			return err
		}
	}

	if err := f.validateDates(); err != nil {
		return err
	}

	if f.Activity != nil {
		if err := checkVar("activity", *f.Activity, rangeTag(MinActivity, MaxActivity)); err != nil {
			return err
		}
	}

	if f.Source != nil {
		if err := checkVar("source", *f.Source, rangeTag(MinSource, MaxSource)); err != nil {
			return err
		}
	}

	if f.ExportDataType != nil {
		if f.Activity == nil || *f.Activity != ExportActivity {
			return &ValidationError{
				Field:  "export_data_type",
				Value:  *f.ExportDataType,
				Reason: fmt.Sprintf("export_data_type requires activity=%d", ExportActivity),
			}
		}
		if err := checkVar("export_data_type", *f.ExportDataType, rangeTag(MinExportDataType, MaxExportDataType)); err != nil {
			return err
		}
	}

	return nil
}

func (f ActivityFilter) validateDates() error {
	var from, to string
	if f.DateFrom != nil {
		from = *f.DateFrom
		if _, err := ParseTimestamp(from); err != nil {
			return &ValidationError{Field: "date_from", Value: from, Reason: "must be a valid timestamp"}
		}
	}
	if f.DateTo != nil {
		to = *f.DateTo
		if _, err := ParseTimestamp(to); err != nil {
			return &ValidationError{Field: "date_to", Value: to, Reason: "must be a valid timestamp"}
		}
	}
	if f.DateFrom == nil || f.DateTo == nil {
		return nil
	}

	fromTime, _ := ParseTimestamp(from)
	toTime, _ := ParseTimestamp(to)
	if !toTime.After(fromTime) {
		return &ValidationError{
			Field:  "date_to",
			Value:  to,
			Reason: fmt.Sprintf("must be later than date_from %s", from),
		}
	}
	return nil
}

// Validate checks the supplied pagination fields.
func (p PageRequest) Validate() error {
	if p.PageNumber != nil {
		if err := checkVar("page_number", *p.PageNumber, "gt=0"); err != nil {
			return err
		}
	}
	if p.PageSize != nil {
		if err := checkVar("page_size", *p.PageSize, "gt=0"); err != nil {
			return err
		}
	}
	return nil
}

// BuildActivityRequest validates the filter and page and assembles the JSON
// body and query parameters of the report call. Only supplied fields appear
// in the output. Nothing is returned unless every field is valid.
func BuildActivityRequest(filter ActivityFilter, page PageRequest) (ActivityRequest, error) {
	if err := filter.Validate(); err != nil {
		return ActivityRequest{}, err
	}
	if err := page.Validate(); err != nil {
		return ActivityRequest{}, err
	}

	body := make(map[string]any)
	if len(filter.UserIDs) > 0 {
		body["userIds"] = append([]int64(nil), filter.UserIDs...)
	}
	if filter.DateFrom != nil {
		body["dateFrom"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		body["dateTo"] = *filter.DateTo
	}
	if filter.Activity != nil {
		body["activity"] = *filter.Activity
	}
	if filter.Source != nil {
		body["source"] = *filter.Source
	}
	if filter.ExportDataType != nil {
		body["exportDataType"] = *filter.ExportDataType
	}

	query := url.Values{}
	if page.PageNumber != nil {
		query.Set("pageNumber", strconv.Itoa(*page.PageNumber))
	}
	if page.PageSize != nil {
		query.Set("pageSize", strconv.Itoa(*page.PageSize))
	}

	return ActivityRequest{Body: body, Query: query}, nil
}

func rangeTag(lo, hi int) string {
	return fmt.Sprintf("min=%d,max=%d", lo, hi)
}

// checkVar runs a validator tag against a single value and converts the first
// failure into a *ValidationError for the named field.
func checkVar(field string, value any, tag string) error {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return &ValidationError{Field: field, Value: value, Reason: err.Error()}
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: field, Value: fe.Value(), Reason: describeRule(fe.Tag(), fe.Param())}
}

func describeRule(tag, param string) string {
	switch tag {
	case "min":
		return "must be at least " + param
	case "max":
		return "must be at most " + param
	case "gt":
		return "must be greater than " + param
	default:
		return "failed rule " + tag
	}
}
