package handlers

import (
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/errs"
	"github.com/biit/biit-api/models"
)

// storeError maps a store failure onto the reply taxonomy
func storeError(action, kind, id string, err error) error {
	if errors.Is(err, databases.ErrNotFound) {
		return errs.NotFound(notFound(kind, id))
	}
	if errors.Is(err, databases.ErrAlreadyExists) {
		return errs.BadRequest(fmt.Sprintf("%s %s already exists", kind, id))
	}
	return errs.Store(fmt.Sprintf("failed to %s %s", action, kind), err)
}

// updateDocument checks a decoded updateFields object against the record
// schema and turns it into a $set document. Fields outside the schema,
// including the document id and key fields, are rejected.
func updateDocument(fields map[string]interface{}, schema models.Schema) (bson.M, error) {
	if len(fields) == 0 {
		return nil, errs.BadRequest("updateFields must name at least one field")
	}

	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)

	doc := bson.M{}
	for _, k := range names {
		fieldType, ok := schema[k]
		if !ok {
			return nil, errs.BadRequest(fmt.Sprintf("%s cannot be updated", k))
		}
		v, err := fieldType.Convert(fields[k])
		if err != nil {
			return nil, errs.BadRequest(fmt.Sprintf("%s %v", k, err))
		}
		doc[k] = v
	}
	return doc, nil
}

func notFound(kind, id string) string {
	return fmt.Sprintf("%s %s was not found", kind, id)
}
