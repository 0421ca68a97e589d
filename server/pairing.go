package server

import (
	"fmt"
	"net"
	"net/http"
	"slices"
	"strconv"

	"lancontrol/internal/logs"
	"lancontrol/internal/models"
	"lancontrol/internal/qrterm"
)

// requestURL — адрес панели так, как его видит клиент.
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/"
}

func (a *App) pairText(w http.ResponseWriter, r *http.Request) {
	text, err := qrterm.RenderText(requestURL(r))
	if err != nil {
		models.WriteProblem(w, r, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	models.WriteText(w, http.StatusOK, text+"\n")
}

func (a *App) pairJSON(w http.ResponseWriter, r *http.Request) {
	url := requestURL(r)
	lines, err := qrterm.Lines(url)
	if err != nil {
		models.WriteProblem(w, r, http.StatusBadRequest, "Bad Request", err.Error(), nil)
		return
	}
	models.WriteJSON(w, http.StatusOK, models.Pairing{URL: url, QR: slices.Collect(lines)})
}

func (a *App) printBanner(url string) {
	text, err := qrterm.RenderText(url)
	if err != nil {
		logs.Logger.Warnf("pairing qr: %v", err)
		return
	}
	fmt.Fprintf(a.out, "\nOpen %s on your phone or scan:\n\n%s\n\n", url, text)
}

// advertisedURL — адрес для клиентов в локальной сети.
// Для wildcard-хоста берём первый не-loopback IPv4 интерфейса.
func advertisedURL(host string, addr net.Addr) string {
	port := ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	} else if _, p, err := net.SplitHostPort(addr.String()); err == nil {
		port = p
	}

	switch host {
	case "", "0.0.0.0", "::":
		host = lanIPv4()
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

func lanIPv4() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil && !ip4.IsLinkLocalUnicast() {
			return ip4.String()
		}
	}
	return "127.0.0.1"
}
