// Package logmsg holds the fixed informational messages emitted by command and query handlers.
package logmsg

const (
	AuthorCreatedSuccessfully  = "Author created successfully"
	AuthorUpdatedSuccessfully  = "Author updated successfully"
	AuthorDeletedSuccessfully  = "Author deleted successfully"
	AuthorGetSuccessfully      = "Author retrieved successfully"
	AuthorListGetSuccessfully  = "Author list retrieved successfully"
	BlogCreatedSuccessfully    = "Blog created successfully"
	BlogUpdatedSuccessfully    = "Blog updated successfully"
	BlogDeletedSuccessfully    = "Blog deleted successfully"
	BlogGetSuccessfully        = "Blog retrieved successfully"
	BlogListGetSuccessfully    = "Blog list retrieved successfully"
	BlogListByAuthorSuccessful = "Blog list for author retrieved successfully"
)
