// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document carrega a identidade de um registro persistido em uma coleção
type Document struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
}

// Identifiable é implementado por toda entidade que embute Document
type Identifiable interface {
	EnsureID() primitive.ObjectID
}

// EnsureID atribui um novo ObjectID quando o documento ainda não possui um
func (d *Document) EnsureID() primitive.ObjectID {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	return d.ID
}
