package i18n

import "strings"

// Minimal message catalog. French is the reference language; English is a
// best-effort overlay. Unknown codes fall back to the code itself so a missing
// translation is visible instead of silent.

var fr = map[string]string{
	"required":         "Requis",
	"invalid_quantity": "Quantité invalide",
	"yes":              "Oui",
	"no":               "Non",
	"request_sent":     "Votre demande a été envoyée avec succès, nous vous contacterons bientôt.",
	"bad_credentials":  "Identifiants incorrects.",
	"product_added":    "Produit ajouté avec succès!",
	"product_updated":  "Produit modifié avec succès!",
	"product_deleted":  "Produit supprimé avec succès!",
	"offer_added":      "Offre ajoutée avec succès!",
	"offer_updated":    "Offre modifiée avec succès!",
	"offer_deleted":    "Offre supprimée avec succès!",
}

var en = map[string]string{
	"required":         "Required",
	"invalid_quantity": "Invalid quantity",
	"yes":              "Yes",
	"no":               "No",
	"request_sent":     "Your request has been sent, we will contact you soon.",
	"bad_credentials":  "Invalid credentials.",
	"product_added":    "Product added successfully!",
	"product_updated":  "Product updated successfully!",
	"product_deleted":  "Product deleted successfully!",
	"offer_added":      "Offer added successfully!",
	"offer_updated":    "Offer updated successfully!",
	"offer_deleted":    "Offer deleted successfully!",
}

// T translates code for lang. Unknown languages fall back to French, then to
// the code itself.
func T(lang, code string) string {
	if lang == "en" {
		if v, ok := en[code]; ok {
			return v
		}
	}
	if v, ok := fr[code]; ok {
		return v
	}
	return code
}

// DetectLanguage picks fr or en from an Accept-Language header, defaulting to fr.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if tag == "en" || strings.HasPrefix(tag, "en-") {
			return "en"
		}
		if tag == "fr" || strings.HasPrefix(tag, "fr-") {
			return "fr"
		}
	}
	return "fr"
}
