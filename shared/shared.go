package shared

import (
	"context"
	"fmt"
	"furever/shared/cache"
	"furever/shared/constant"
	"furever/shared/dto"
	"furever/shared/timezone"
	"hash/fnv"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// dateLayouts covers the representations booking dates have been stored in
// across the historical schema variants.
var dateLayouts = []string{
	constant.DateOnlyFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// NormalizeDate renders any supported date representation as YYYY-MM-DD.
// Unparseable values come back empty rather than leaking raw storage formats.
func NormalizeDate(value any) string {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return constant.Empty
		}

		return v.Format(constant.DateOnlyFormat)
	case *time.Time:
		if v == nil {
			return constant.Empty
		}

		return NormalizeDate(*v)
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed.Format(constant.DateOnlyFormat)
			}
		}

		return constant.Empty
	default:
		return constant.Empty
	}
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a cache key from pagination and filter state so
// distinct listings never collide.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	hash := fnv.New64a()
	fmt.Fprintf(hash, "%d|%d|%s|%s|%s|%v", params.Page, params.Limit, params.SortBy, params.SortDir, where, args)

	return fmt.Sprintf("%s:%x", prefix, hash.Sum64())
}

func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
