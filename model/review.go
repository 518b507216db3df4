package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	Id         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MovieId    string             `json:"movieId" bson:"movieId"`
	MovieTitle string             `json:"movieTitle,omitempty" bson:"movieTitle,omitempty"`
	Rating     int                `json:"rating" bson:"rating"`
	ReviewText string             `json:"reviewText" bson:"reviewText"`
	UserId     string             `json:"userId" bson:"userId"`
	UserName   string             `json:"userName,omitempty" bson:"userName,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

//---------------------------------------
//---------------------------------------

type CreateReviewReq struct {
	MovieId    string `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	Rating     *int   `json:"rating"`
	ReviewText string `json:"reviewText"`
	UserName   string `json:"userName"`
}

// UpdateReviewReq is a partial patch, absent fields keep their stored value.
type UpdateReviewReq struct {
	ReviewText *string `json:"reviewText"`
	Rating     *int    `json:"rating"`
}
