package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Rating struct {
	Id        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ItemId    string             `json:"itemId" bson:"itemId"`
	ItemType  string             `json:"itemType,omitempty" bson:"itemType,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	UserId    string             `json:"userId" bson:"userId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

//---------------------------------------
//---------------------------------------

type CreateRatingReq struct {
	ItemId   string `json:"itemId"`
	ItemType string `json:"itemType"`
	Rating   *int   `json:"rating"`
}

type UpdateRatingReq struct {
	Rating *int `json:"rating"`
}
