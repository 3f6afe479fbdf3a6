package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"microfin_intake/pkg/api/analysis"
	"microfin_intake/pkg/api/application"
	apinarrative "microfin_intake/pkg/api/narrative"
	"microfin_intake/pkg/core/agent"
	"microfin_intake/pkg/core/prompt"
	"microfin_intake/pkg/core/store"
)

var agentMgr *agent.Manager

func main() {
	// Load environment variables
	godotenv.Load()

	// Prompt overrides (built-ins apply when the directory is absent)
	if err := prompt.LoadFromDirectory("config"); err != nil {
		fmt.Printf("[PROMPT] No prompt overrides loaded: %v\n", err)
	} else {
		fmt.Printf("[PROMPT] %d prompts registered\n", prompt.Get().Count())
	}

	// Initialize manager from config
	configData, _ := os.ReadFile("config/models.yaml")
	var agentCfg agent.Config
	yaml.Unmarshal(configData, &agentCfg)
	agentMgr = agent.NewManager(agentCfg)

	// Database (optional: the analysis endpoints work without it)
	ctx := context.Background()
	if err := store.InitDB(ctx); err != nil {
		fmt.Printf("[WARNING] Database not available: %v\n", err)
		fmt.Println("  Save/load endpoints will fail; photo vault falls back to files.")
	} else {
		defer store.Close()
	}

	// Application endpoints
	photoVault := store.NewPhotoStore(store.GetPool(), os.Getenv("PHOTO_VAULT_DIR"), "/api/photo")
	application.InitHandler(store.NewApplicationRepo(), photoVault)
	http.HandleFunc("/api/application/save", application.HandleSave)
	http.HandleFunc("/api/application/load", application.HandleLoad)
	http.HandleFunc("/api/application/list", application.HandleList)
	http.HandleFunc("/api/application/photo", application.HandlePhotoUpload)
	http.HandleFunc("/api/photo/", application.HandlePhotoGet)

	// Analysis endpoint (pure computation)
	http.HandleFunc("/api/analysis/report", analysis.HandleReport)

	// Narrative endpoints
	apinarrative.InitHandler(agentMgr)
	http.HandleFunc("/api/narrative/debt", apinarrative.HandleDebt)
	http.HandleFunc("/api/narrative/sixcs", apinarrative.HandleSixCs)

	fmt.Println("API server starting on :8080...")
	fmt.Println("  - POST /api/application/save")
	fmt.Println("  - GET  /api/application/load")
	fmt.Println("  - GET  /api/application/list")
	fmt.Println("  - POST /api/application/photo")
	fmt.Println("  - POST /api/analysis/report")
	fmt.Println("  - POST /api/narrative/debt")
	fmt.Println("  - POST /api/narrative/sixcs")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
