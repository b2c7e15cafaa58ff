package metrics

import (
	"net/http"

	"github.com/arl/statsviz"
)

// Handler 运行时监控页面，路径为 /debug/statsviz/
func Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := statsviz.Register(mux); err != nil {
		return nil, err
	}
	return mux, nil
}

// Serve 阻塞运行监控服务
func Serve(addr string) error {
	h, err := Handler()
	if err != nil {
		return err
	}
	return http.ListenAndServe(addr, h)
}
