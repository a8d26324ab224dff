package handlers

import "net/http"

// Static storefront pages.

func About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "about.html", nil)
}

func Contact(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "contact.html", nil)
}

func Privacy(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, "privacy.html", nil)
}
