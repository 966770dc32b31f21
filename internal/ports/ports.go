package ports

import (
    "fmt"
    "net"
    "strconv"
)

// Auto is the listen address that asks for a free loopback port.
const Auto = "auto"

func FindFreePort() (int, error) {
    l, err := net.Listen("tcp", "127.0.0.1:0")
    if err != nil {
        return 0, fmt.Errorf("listen: %w", err)
    }
    defer l.Close()
    return l.Addr().(*net.TCPAddr).Port, nil
}

// ResolveAddr returns addr unchanged unless it is Auto, in which case a free
// loopback port is chosen.
func ResolveAddr(addr string) (string, error) {
    if addr != Auto {
        return addr, nil
    }
    port, err := FindFreePort()
    if err != nil {
        return "", err
    }
    return net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), nil
}

// LocalURL turns a listen address into a URL a local client can reach.
func LocalURL(addr string) string {
    host, port, err := net.SplitHostPort(addr)
    if err != nil {
        return "http://" + addr
    }
    if host == "" || host == "0.0.0.0" || host == "::" {
        host = "127.0.0.1"
    }
    return "http://" + net.JoinHostPort(host, port)
}
