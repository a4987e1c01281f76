// Command wfcserve steps a collapse attempt and streams its progress
// to a browser over a websocket, as a grid of per-cell possibility
// counts. Contradictions restart the attempt with fresh random state,
// which makes the retry behavior of the driver visible.
package main

import (
	"flag"
	"fmt"
	"html/template"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wbrown/wfc"
	"github.com/wbrown/wfc/imageutil"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
)

var upgrader = websocket.Upgrader{}

// update is one frame of progress pushed to the client.
type update struct {
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	Tiles   int     `json:"tiles"`
	Counts  [][]int `json:"counts"`
	Done    bool    `json:"done"`
	Restart bool    `json:"restart"`
}

type server struct {
	pat   *wfc.Pattern
	rows  int
	cols  int
	delay time.Duration
}

func (s *server) frame(e *wfc.Engine, done, restart bool) update {
	return update{
		Rows:    s.rows,
		Cols:    s.cols,
		Tiles:   s.pat.Tiles(),
		Counts:  e.PossibleCounts(),
		Done:    done,
		Restart: restart,
	}
}

// serveWS runs collapse attempts for one client, pushing a frame
// after every observation until an attempt completes.
func (s *server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	defer conn.Close()

	push := func(up update) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(up); err != nil {
			log.Printf("write: %v", err)
			return false
		}
		return true
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for {
		e := wfc.NewEngine(s.pat, s.rows, s.cols, rng)
		if !e.Init() {
			if !push(s.frame(e, false, true)) {
				return
			}
			continue
		}
		for {
			done, ok := e.Step()
			if !ok {
				if !push(s.frame(e, false, true)) {
					return
				}
				break
			}
			if !push(s.frame(e, done, false)) {
				return
			}
			if done {
				return
			}
			time.Sleep(s.delay)
		}
	}
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>wfc progress</title></head>
<body style="background:#111;color:#ddd;font-family:monospace">
<p id="status">connecting…</p>
<canvas id="grid" width="{{.W}}" height="{{.H}}" style="image-rendering:pixelated;width:{{.ScaledW}}px"></canvas>
<script>
const ctx = document.getElementById("grid").getContext("2d");
const status = document.getElementById("status");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
	const up = JSON.parse(ev.data);
	if (up.restart) { status.textContent = "contradiction, restarting"; return; }
	status.textContent = up.done ? "done" : "collapsing…";
	for (let i = 0; i < up.rows; i++) {
		for (let j = 0; j < up.cols; j++) {
			const v = Math.round(255 * (1 - (up.counts[i][j] - 1) / Math.max(1, up.tiles - 1)));
			ctx.fillStyle = "rgb(" + v + "," + v + "," + v + ")";
			ctx.fillRect(j, i, 1, 1);
		}
	}
};
ws.onclose = () => { status.textContent += " (closed)"; };
</script>
</body>
</html>`))

func (s *server) servePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page.Execute(w, struct {
		W, H, ScaledW int
	}{s.cols, s.rows, s.cols * 8})
}

func main() {
	addr := flag.String("addr", ":8080",
		"HTTP listen address")
	inputFile := flag.String("input", "",
		"Path to the input sample image (a noise sample is generated when empty)")
	k := flag.Int("k", 3,
		"Window size of the tile alphabet")
	rows := flag.Int("rows", 32,
		"Wave grid rows")
	cols := flag.Int("cols", 48,
		"Wave grid columns")
	hwrap := flag.Bool("hwrap", true,
		"Treat the sample as horizontally periodic")
	vwrap := flag.Bool("vwrap", true,
		"Treat the sample as vertically periodic")
	rotate := flag.Bool("rotate", true,
		"Augment the alphabet with 90-degree rotations")
	delay := flag.Duration("delay", 5*time.Millisecond,
		"Pause between observations, slows the animation down")
	flag.Parse()

	var sample imageutil.Grid
	if *inputFile != "" {
		var err error
		sample, err = imageutil.LoadGrid(*inputFile)
		if err != nil {
			log.Fatalf("loading sample: %v", err)
		}
	} else {
		sample = imageutil.NoiseGrid(32, 32, time.Now().UnixNano(), 0.12,
			imageutil.RGB{R: 200, G: 40, B: 40},
			imageutil.RGB{R: 240, G: 230, B: 200},
			imageutil.RGB{R: 40, G: 70, B: 160})
	}

	var enc wfc.MatrixEncoder[imageutil.RGB]
	pat := enc.Fit(sample, *k, *hwrap, *vwrap, *rotate)
	fmt.Printf("alphabet: %d tiles, serving on %s\n", pat.Tiles(), *addr)

	s := &server{pat: pat, rows: *rows, cols: *cols, delay: *delay}
	http.HandleFunc("/", s.servePage)
	http.HandleFunc("/ws", s.serveWS)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
