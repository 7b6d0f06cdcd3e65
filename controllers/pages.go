package controllers

import (
	"embed"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"questbook/middleware"
	"questbook/services/catalog"
	"questbook/services/i18n"
	"questbook/services/upstream"
)

//go:embed legal/*/*.md
var legalFS embed.FS

var legalDocuments = []string{"privacy", "terms", "cookies"}

type PagesController struct {
	Catalog  *catalog.Service
	Upstream *upstream.Client
	I18n     *i18n.Service
}

// @Summary Returns the home page payload
// @Description Hero copy, SEO metadata and the featured games for the active language.
// @Tags pages
// @Produce json
// @Success 200 {object} object{hero=object,seo=object,featured=array}
// @Router /api/pages/home [get]
func (pc *PagesController) Home(c *gin.Context) {
	lang := middleware.Lang(c)

	games, err := pc.Catalog.Games(c.Request.Context(), lang)
	if err != nil {
		respondError(c, pc.I18n, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hero": gin.H{
			"title":       pc.I18n.T(lang, "hero.title", nil),
			"subtitle":    pc.I18n.T(lang, "hero.subtitle", nil),
			"description": pc.I18n.T(lang, "hero.description", nil),
			"cta":         pc.I18n.T(lang, "hero.cta", nil),
		},
		"seo": gin.H{
			"title":       pc.I18n.T(lang, "seo.home.title", nil),
			"description": pc.I18n.T(lang, "seo.home.description", nil),
		},
		"featured": catalog.Featured(games),
	})
}

// @Summary Returns the about page payload
// @Description Company copy, SEO metadata and links to the legal documents for the active language.
// @Tags pages
// @Produce json
// @Success 200 {object} object{title=string,intro=string,seo=object,legal=array}
// @Router /api/pages/about [get]
func (pc *PagesController) About(c *gin.Context) {
	lang := middleware.Lang(c)

	legal := make([]gin.H, 0, len(legalDocuments))
	for _, doc := range legalDocuments {
		legal = append(legal, gin.H{
			"document": doc,
			"title":    pc.I18n.T(lang, "legal."+doc+".title", nil),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"title": pc.I18n.T(lang, "about.title", nil),
		"intro": pc.I18n.T(lang, "about.intro", nil),
		"seo": gin.H{
			"title":       pc.I18n.T(lang, "seo.about.title", nil),
			"description": pc.I18n.T(lang, "seo.about.description", nil),
		},
		"legal": gin.H{
			"title":     pc.I18n.T(lang, "about.legalTitle", nil),
			"documents": legal,
		},
	})
}

// @Summary Returns the contact page payload
// @Tags pages
// @Produce json
// @Success 200 {object} object{title=string,contacts=object}
// @Failure 502 {object} object{error=string,retry=bool}
// @Router /api/pages/contact [get]
func (pc *PagesController) Contact(c *gin.Context) {
	lang := middleware.Lang(c)

	contacts, err := pc.Upstream.Contacts(c.Request.Context(), lang)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": pc.I18n.T(lang, "contact.loadError", nil),
			"retry": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"title": pc.I18n.T(lang, "contact.title", nil),
		"seo": gin.H{
			"title": pc.I18n.T(lang, "seo.contact.title", nil),
		},
		"contacts": contacts,
	})
}

// @Summary Returns a legal document
// @Description Serves the privacy policy, terms of service or cookie policy in the active language.
// @Tags pages
// @Produce json
// @Param document path string true "Document name" Enums(privacy, terms, cookies)
// @Success 200 {object} object{title=string,content=string}
// @Failure 404 {object} object{error=string}
// @Router /api/pages/legal/{document} [get]
func (pc *PagesController) Legal(c *gin.Context) {
	doc := c.Param("document")
	if !isLegalDocument(doc) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown document"})
		return
	}

	lang := middleware.Lang(c)
	content, err := legalFS.ReadFile(fmt.Sprintf("legal/%s/%s.md", lang, doc))
	if err != nil {
		// Every supported language ships every document, but fall back
		// to English rather than 500 on a packaging mistake.
		content, err = legalFS.ReadFile(fmt.Sprintf("legal/en/%s.md", doc))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown document"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"title":   pc.I18n.T(lang, "legal."+doc+".title", nil),
		"content": string(content),
	})
}

// @Summary Returns the payment result page payload
// @Tags pages
// @Produce json
// @Param outcome path string true "Payment outcome" Enums(success, cancelled)
// @Success 200 {object} object{outcome=string,message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/pages/payment/{outcome} [get]
func (pc *PagesController) PaymentResult(c *gin.Context) {
	outcome := c.Param("outcome")
	if outcome != "success" && outcome != "cancelled" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown outcome"})
		return
	}

	lang := middleware.Lang(c)
	c.JSON(http.StatusOK, gin.H{
		"outcome": outcome,
		"message": pc.I18n.T(lang, "payment."+outcome, nil),
	})
}

func isLegalDocument(name string) bool {
	for _, d := range legalDocuments {
		if d == name {
			return true
		}
	}
	return false
}
