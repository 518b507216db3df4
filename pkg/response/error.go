package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	ReviewNotFound = "Review not found."
	RatingNotFound = "Rating not found."
	MovieNotFound  = "Movie not found."
	//----------------------
	ReviewUpdateForbidden = "Forbidden: You can only update your own reviews."
	ReviewDeleteForbidden = "Forbidden: You can only delete your own reviews."
	RatingUpdateForbidden = "Forbidden: You can only update your own ratings."
	RatingDeleteForbidden = "Forbidden: You can only delete your own ratings."
	//----------------------
	MissingReviewFields       = "Missing required fields: movieId, rating, and reviewText."
	MissingRatingFields       = "Missing required fields: itemId and rating."
	MissingReviewUpdateFields = "Missing required field for update: reviewText or rating."
	MissingRatingUpdateFields = "Missing required field for update: rating."
	EmptyReviewText           = "reviewText must not be empty."
	InvalidReviewRating       = "Rating must be an integer between 1 and 5."
	InvalidItemId             = "Invalid itemId"
	InvalidMovieId            = "Invalid movieId"
	InvalidReviewId           = "Invalid reviewId"
	InvalidRatingId           = "Invalid ratingId"
	InvalidSearchQuery        = "Invalid search query"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	TokenNotProvided = "Unauthorized, token not provided"
	InvalidToken     = "Unauthorized, Invalid token"
	RevokedToken     = "Unauthorized, token is revoked"
	//----------------------
	ReviewCreated = "Review created successfully"
	ReviewUpdated = "Review updated successfully."
	ReviewDeleted = "Review deleted successfully."
	RatingCreated = "Rating created successfully"
	RatingUpdated = "Rating updated successfully."
	RatingDeleted = "Rating deleted successfully."
	//----------------------
)
