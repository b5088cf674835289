// Le gateway est la variante proxy du backend : il possède le processus
// serveur comme enfant explicite, attend qu'il soit réellement prêt
// (readiness sur /api/health) avant d'accepter du trafic, et lui relaie
// toutes les requêtes.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dmac_back_end/internal/config"
)

// backendProcess encapsule le cycle de vie du serveur enfant : démarrage,
// readiness, arrêt propre. Pas de variable globale nue.
type backendProcess struct {
	cmd     *exec.Cmd
	baseURL string
	done    chan error
}

func startBackend() (*backendProcess, error) {
	command := os.Getenv("BACKEND_CMD")
	if command == "" {
		command = "./server"
	}

	port := os.Getenv("BACKEND_PORT")
	if port == "" {
		port = "8081"
	}

	parts := strings.Fields(command)
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Env = append(os.Environ(), "PORT="+port)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("démarrage backend: %w", err)
	}

	bp := &backendProcess{
		cmd:     cmd,
		baseURL: "http://127.0.0.1:" + port,
		done:    make(chan error, 1),
	}
	go func() { bp.done <- cmd.Wait() }()

	log.Printf("✅ Backend démarré (pid %d) sur %s", cmd.Process.Pid, bp.baseURL)
	return bp, nil
}

// waitReady sonde /api/health jusqu'à ce que le backend réponde, ou échoue si
// le processus meurt ou si le délai expire.
func (bp *backendProcess) waitReady(ctx context.Context) error {
	client := &http.Client{Timeout: 2 * time.Second}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return errors.New("backend jamais prêt avant expiration du délai")
		case err := <-bp.done:
			return fmt.Errorf("backend mort pendant le démarrage: %v", err)
		case <-ticker.C:
			resp, err := client.Get(bp.baseURL + "/api/health")
			if err == nil {
				resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return nil
				}
			}
		}
	}
}

func (bp *backendProcess) stop() {
	if bp.cmd.Process == nil || bp.cmd.ProcessState != nil {
		// jamais démarré ou déjà terminé
		return
	}
	// SIGTERM d'abord, SIGKILL si l'enfant traîne
	bp.cmd.Process.Signal(syscall.SIGTERM)
	select {
	case <-bp.done:
	case <-time.After(10 * time.Second):
		log.Println("⚠️ Backend ne répond pas au SIGTERM — SIGKILL")
		bp.cmd.Process.Kill()
		<-bp.done
	}
	log.Println("🔌 Backend arrêté")
}

func main() {
	config.Load()

	backend, err := startBackend()
	if err != nil {
		log.Fatal("❌", err)
	}

	readyCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := backend.waitReady(readyCtx); err != nil {
		backend.stop()
		log.Fatal("❌ ", err)
	}
	log.Println("✅ Backend prêt — le gateway accepte le trafic")

	target, err := url.Parse(backend.baseURL)
	if err != nil {
		backend.stop()
		log.Fatal("❌ URL backend invalide:", err)
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Println("⚠️ Erreur proxy:", err)
		w.WriteHeader(http.StatusBadGateway)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	server := &http.Server{Addr: ":" + port, Handler: proxy}

	go func() {
		log.Println("🚀 Gateway DMAC lancé sur le port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Erreur gateway:", err)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		log.Println("🛑 Signal reçu:", sig)
	case err := <-backend.done:
		// Si l'enfant meurt, le gateway n'a plus rien à servir
		log.Println("❌ Backend terminé:", err)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	server.Shutdown(shutdownCtx)
	backend.stop()
}
