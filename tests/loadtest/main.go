package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	flag "github.com/spf13/pflag"
)

var (
	baseURL      = flag.String("url", "http://127.0.0.1:8090", "photobooth daemon base URL")
	numWorkers   = flag.Int("workers", 20, "concurrent clients")
	testDuration = flag.Duration("duration", 10*time.Second, "duration of each phase")
	numPhotos    = flag.Int("photos", 4, "photos per seeded session")
)

var stickers = []string{"⭐", "❤️", "🎉", "😎", "🌸", "👑"}

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	flag.Parse()
	fmt.Println("=== Photobooth Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Photos: %d\n\n", *numWorkers, *testDuration, *numPhotos)

	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(*baseURL + "/health")
		if err == nil {
			drain(resp)
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	fmt.Println("\n--- Phase 1: Seeding a session ---")
	if err := seedSession(); err != nil {
		fmt.Printf("FAILED: %s\n", err)
		return
	}

	fmt.Println("\n--- Phase 2: Read-only load (status, photos, thumbnails) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.30:
			return doGet("GET /session/status", "/session/status")
		case r < 0.45:
			return doGet("GET /photos", "/photos")
		case r < 0.85:
			return doGet("GET /photos/image", fmt.Sprintf("/photos/image?i=%d&w=160&h=120", rng.Intn(*numPhotos)))
		default:
			return doGet("GET /overlay", "/overlay")
		}
	})

	fmt.Println("\n--- Phase 3: Editing under read load (20% edits, 80% renders) ---")
	runPhase(*testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.05:
			return doPost("POST /editor/open", "/editor/open", map[string]interface{}{"index": rng.Intn(*numPhotos)})
		case r < 0.12:
			return doPost("POST /editor/sticker", "/editor/sticker", map[string]interface{}{"symbol": stickers[rng.Intn(len(stickers))]})
		case r < 0.20:
			return doPost("POST /editor/move", "/editor/move", map[string]interface{}{
				"sticker": 0, "x": rng.Float64() * 100, "y": rng.Float64() * 100,
			})
		case r < 0.60:
			return doGet("GET /photos/image", fmt.Sprintf("/photos/image?i=%d", rng.Intn(*numPhotos)))
		default:
			return doGet("GET /editor/preview", "/editor/preview")
		}
	})
}

// seedSession runs a zero-timer session and waits for it to complete.
func seedSession() error {
	settings := map[string]interface{}{"totalPhotos": *numPhotos, "timerSeconds": 0, "layout": "2x2"}
	for _, step := range []struct {
		path string
		body interface{}
	}{
		{"/session/new", nil},
		{"/camera/start", nil},
		{"/settings", settings},
		{"/session/start", nil},
	} {
		if r := doPost("POST "+step.path, step.path, step.body); r.err && step.path != "/session/new" {
			return fmt.Errorf("%s returned %d", step.path, r.status)
		}
	}
	deadline := time.Now().Add(time.Duration(*numPhotos+5) * 2 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := httpClient.Get(*baseURL + "/session/status")
		if err != nil {
			return err
		}
		var st struct {
			Status string `json:"status"`
			Taken  int    `json:"taken"`
		}
		err = json.NewDecoder(resp.Body).Decode(&st)
		drain(resp)
		if err != nil {
			return err
		}
		if st.Status == "completed" {
			fmt.Printf("Session completed with %d photos\n", st.Taken)
			return nil
		}
		time.Sleep(250 * time.Millisecond)
	}
	return fmt.Errorf("session did not complete in time")
}

// tally holds one worker's results for a phase.
type tally map[string]*stats

func (t tally) add(r result) {
	s, ok := t[r.endpoint]
	if !ok {
		s = &stats{}
		t[r.endpoint] = s
	}
	s.count++
	if r.err {
		s.errors++
	}
	s.latencies = append(s.latencies, r.latency)
}

func (t tally) merge(o tally) {
	for ep, s := range o {
		dst, ok := t[ep]
		if !ok {
			t[ep] = s
			continue
		}
		dst.count += s.count
		dst.errors += s.errors
		dst.latencies = append(dst.latencies, s.latencies...)
	}
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	var wg sync.WaitGroup
	deadline := time.Now().Add(duration)
	tallies := make([]tally, *numWorkers)

	for i := range tallies {
		tallies[i] = tally{}
		wg.Add(1)
		go func(t tally, seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for time.Now().Before(deadline) {
				t.add(workFn(rng))
			}
		}(tallies[i], time.Now().UnixNano()+int64(i))
	}
	wg.Wait()

	all := tally{}
	for _, t := range tallies {
		all.merge(t)
	}
	printResults(all, duration)
}

func printResults(all tally, duration time.Duration) {
	endpoints := make([]string, 0, len(all))
	for ep := range all {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s\n", "Endpoint", "Reqs", "Errs", "Avg", "P50", "P99")
	fmt.Println("  " + strings.Repeat("=", 76))

	var reqs, errs int64
	for _, ep := range endpoints {
		s := all[ep]
		reqs += s.count
		errs += s.errors
		slices.Sort(s.latencies)
		fmt.Printf("  %-22s %8d %6d %10s %10s %10s\n", ep, s.count, s.errors,
			fmtDur(mean(s.latencies)), fmtDur(quantile(s.latencies, 0.50)), fmtDur(quantile(s.latencies, 0.99)))
	}
	if reqs == 0 {
		fmt.Println("  no requests completed")
		return
	}
	fmt.Printf("  %d requests, %d errors (%.1f%%), %.0f req/s\n",
		reqs, errs, 100*float64(errs)/float64(reqs), float64(reqs)/duration.Seconds())
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func doGet(endpoint, path string) result {
	start := time.Now()
	resp, err := httpClient.Get(*baseURL + path)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	drain(resp)
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != http.StatusOK}
}

// doPost counts 409 as success; concurrent editor calls conflict routinely.
func doPost(endpoint, path string, body interface{}) result {
	var data []byte
	if body != nil {
		data, _ = json.Marshal(body)
	}
	start := time.Now()
	resp, err := httpClient.Post(*baseURL+path, "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	drain(resp)
	ok := resp.StatusCode < 300 || resp.StatusCode == http.StatusConflict
	return result{endpoint, resp.StatusCode, lat, !ok}
}

func mean(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

// quantile expects d sorted.
func quantile(d []time.Duration, q float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	return d[min(int(float64(len(d))*q), len(d)-1)]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dus", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
