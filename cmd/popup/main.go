// The popup service renders the embeddable alert fragment for the
// investigator's hand-off. It accepts percent-encoded url, score and
// decision query parameters and returns a self-contained modal: score >= 80
// gets the danger tier, any lower alert-eligible score the caution tier.
package main

import (
	"html/template"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/phishinv/phish-investigator/internal/domain"
)

const fragmentTemplate = `<style>
  @keyframes fadeOut {
    0% { opacity: 1; }
    100% { opacity: 0; }
  }
  .fade-out {
    animation: fadeOut 0.3s ease forwards;
  }
</style>

<div id="popup-modal" class="fixed inset-0 flex items-center justify-center z-50 transition-opacity duration-300">
  <div class="absolute inset-0 bg-black/40" onclick="closeModal()"></div>

  <div class="relative bg-white rounded-xl p-6 shadow max-w-md z-60 transform transition-all">
    <h3 class="text-lg font-semibold mb-2 {{.BadgeClass}} px-2 py-1 rounded">{{.Label}}</h3>
    <p class="text-sm text-slate-700 mb-4">
      Suspected URL:<br><span class="font-mono text-xs break-all">{{.URL}}</span>
    </p>
    <p class="mb-4">Risk score: <strong>{{.Score}}</strong> ({{.Decision}})</p>

    <div class="flex gap-2 justify-end">
      <a href="https://phishing.gov.kr" target="_blank"
         class="bg-red-600 text-white px-4 py-2 rounded-xl hover:bg-red-700">Report</a>
      <button onclick="closeModal()"
              class="bg-slate-200 px-4 py-2 rounded-xl hover:bg-slate-300">
        Dismiss
      </button>
    </div>
  </div>
</div>

<script>
  function closeModal() {
    const modal = document.getElementById('popup-modal');
    if (modal) {
      modal.classList.add('fade-out');
      setTimeout(() => modal.remove(), 300);
    }
  }
</script>
`

type fragmentData struct {
	URL        string
	Score      int
	Decision   string
	Label      string
	BadgeClass string
}

func fragment(c *gin.Context) {
	score, err := strconv.Atoi(c.Query("score"))
	if err != nil || score < 0 {
		score = 0
	}

	data := fragmentData{
		URL:      c.Query("url"),
		Score:    score,
		Decision: c.Query("decision"),
	}
	if score >= domain.ReportThreshold {
		data.Label = "🚨 Danger"
		data.BadgeClass = "bg-red-100 text-red-800"
	} else {
		data.Label = "⚠️ Caution"
		data.BadgeClass = "bg-yellow-100 text-yellow-800"
	}

	c.HTML(http.StatusOK, "fragment", data)
}

func main() {
	log.Println("Starting alert popup service...")

	addr := getEnv("POPUP_ADDR", ":8001")
	origin := getEnv("INVESTIGATOR_ORIGIN", "http://127.0.0.1:8000")

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// The investigator's origin loads the fragment cross-origin
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{origin},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Content-Type"},
	}))

	r.SetHTMLTemplate(template.Must(template.New("fragment").Parse(fragmentTemplate)))
	r.GET("/fragment", fragment)

	log.Printf("🚀 Listening on %s (allowed origin %s)", addr, origin)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
