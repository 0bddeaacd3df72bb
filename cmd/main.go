package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	sc "telspell/internal/corrector"
	"telspell/internal/customdict"
	"telspell/pkg/options"
)

func main() {
	_ = godotenv.Load()

	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvInt("REDIS_DB", 0)

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	dict := customdict.New(client)

	modelPath := getenv("MODEL_PATH", "Telugu_WordModel.json")
	baseCounts, err := sc.LoadCounts(modelPath)
	if err != nil {
		log.Fatalf("load model: %v", err)
	}
	log.Printf("loaded %d words from %s", len(baseCounts), modelPath)

	topK := getEnvInt("TOP_K_SUGGESTIONS", 5)
	stage2Limit := getEnvInt("STAGE2_LIMIT", 0)

	// The corrector is immutable; custom-word changes build a fresh one
	// and swap it in atomically.
	var current atomic.Pointer[sc.Corrector]
	rebuild := func(ctx context.Context) error {
		words, err := dict.All(ctx)
		if err != nil {
			return err
		}
		model, err := sc.NewFrequencyModel(sc.MergeCustomWords(baseCounts, words))
		if err != nil {
			return err
		}
		corr, err := sc.NewCorrector(model,
			options.WithTopKSuggestions(topK),
			options.WithStage2Limit(stage2Limit),
		)
		if err != nil {
			return err
		}
		current.Store(corr)
		return nil
	}
	if err := rebuild(context.Background()); err != nil {
		log.Fatalf("init corrector: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		res := current.Load().CorrectText(req.Text)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	})

	mux.HandleFunc("/api/v1/suggest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Tokens []string `json:"tokens"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Tokens) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		ranked, err := current.Load().CorrectBatch(r.Context(), req.Tokens)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": ranked})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		if !sc.IsTeluguWord(req.Word) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word must be telugu"})
			return
		}
		if err := dict.Add(r.Context(), req.Word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if err := rebuild(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
			return
		}
		if err := dict.Remove(r.Context(), word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if err := rebuild(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
