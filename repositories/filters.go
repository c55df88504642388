package repository

import "go.mongodb.org/mongo-driver/bson"

// BuildFilter turns a column→value map into a Mongo filter. A slice value
// becomes an $in match; everything else matches by equality. This is the one
// place the generic fetchRows filter shape is translated.
func BuildFilter(filter map[string]interface{}) bson.M {
	out := bson.M{}
	for column, value := range filter {
		switch v := value.(type) {
		case []string:
			out[column] = bson.M{"$in": v}
		case []int:
			out[column] = bson.M{"$in": v}
		case []interface{}:
			out[column] = bson.M{"$in": v}
		default:
			out[column] = v
		}
	}
	return out
}
