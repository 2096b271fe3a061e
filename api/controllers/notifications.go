package controllers

import (
	"net/http"

	"github.com/shopwave/shopwave-backend/api/responses"
	"github.com/shopwave/shopwave-backend/internal/notifier"
)

// NotificationList returns the recent toast feed, newest first.
func NotificationList(feed *notifier.Feed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, feed.Recent())
	}
}
