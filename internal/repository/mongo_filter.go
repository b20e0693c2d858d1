package repository

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/deppfellow/dictionary-api/internal/query"
)

// toBSON translates a filter tree into a MongoDB query document.
func toBSON(f query.Filter) (bson.M, error) {
	switch f := f.(type) {
	case query.Regex:
		return bson.M{f.Field: bson.M{"$regex": f.Pattern, "$options": "i"}}, nil

	case query.Text:
		return bson.M{"$text": bson.M{"$search": f.Search}}, nil

	case query.Eq:
		return bson.M{f.Field: bson.M{"$eq": f.Value}}, nil

	case query.NotEmpty:
		return bson.M{f.Field: bson.M{"$nin": bson.A{"", nil}}}, nil

	case query.MinLength:
		return bson.M{
			f.Field: bson.M{"$type": "string"},
			"$expr": bson.M{"$gt": bson.A{
				bson.M{"$strLenCP": bson.M{"$ifNull": bson.A{"$" + f.Field, ""}}},
				f.Length,
			}},
		}, nil

	case query.And:
		if len(f) == 0 {
			return bson.M{}, nil
		}
		if len(f) == 1 {
			return toBSON(f[0])
		}
		children, err := toBSONList(f)
		if err != nil {
			return nil, err
		}
		return bson.M{"$and": children}, nil

	case query.Or:
		if len(f) == 0 {
			return toBSON(query.Nothing{})
		}
		children, err := toBSONList(f)
		if err != nil {
			return nil, err
		}
		return bson.M{"$or": children}, nil

	case query.Nothing:
		return bson.M{"_id": bson.M{"$exists": false}}, nil

	default:
		return nil, fmt.Errorf("unsupported filter %T", f)
	}
}

func toBSONList(filters []query.Filter) (bson.A, error) {
	out := make(bson.A, 0, len(filters))
	for _, child := range filters {
		doc, err := toBSON(child)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}
