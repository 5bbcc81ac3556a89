package ssl

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// TlsHandler 安全响应头；forceSSL 为 true 时把 http 请求重定向到 https
func TlsHandler(host string, port int, forceSSL bool) gin.HandlerFunc {
	opts := secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}
	if forceSSL {
		opts.SSLRedirect = true
		opts.SSLHost = host + ":" + strconv.Itoa(port)
		opts.STSSeconds = 31536000
	}
	secureMiddleware := secure.New(opts)

	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)

		// Process 已经写入了重定向响应，只需中止 gin 的处理链
		if err != nil {
			c.Abort()
			return
		}

		c.Next()
	}
}
