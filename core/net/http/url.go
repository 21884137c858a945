package http

import (
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"
)

// URLBuilder 以基础地址为起点, 链式拼接资源路径和查询参数
type URLBuilder struct {
	scheme string
	host   string
	path   string
	query  url.Values
}

// NewURLBuilder 创建空的URL构建器
func NewURLBuilder() *URLBuilder {
	return &URLBuilder{query: make(url.Values)}
}

// FromURL 从基础地址创建构建器, 例如 http://localhost:8080
func FromURL(rawURL string) (*URLBuilder, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", rawURL)
	}

	return &URLBuilder{
		scheme: u.Scheme,
		host:   u.Host,
		path:   u.Path,
		query:  u.Query(),
	}, nil
}

// Scheme 设置URL协议
func (b *URLBuilder) Scheme(scheme string) *URLBuilder {
	b.scheme = scheme
	return b
}

// Host 设置主机地址, 可包含端口
func (b *URLBuilder) Host(host string) *URLBuilder {
	b.host = host
	return b
}

// Path 设置完整路径，会覆盖之前的路径
func (b *URLBuilder) Path(p string) *URLBuilder {
	b.path = p
	return b
}

// AppendPath 追加路径段; 非字符串段按 %v 格式化, 空段被忽略
func (b *URLBuilder) AppendPath(segments ...any) *URLBuilder {
	parts := make([]string, 0, len(segments)+1)
	if b.path != "" {
		parts = append(parts, b.path)
	}
	for _, seg := range segments {
		s := strings.Trim(fmt.Sprint(seg), "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) > 0 {
		b.path = path.Join(parts...)
	}
	return b
}

// Query 添加单个查询参数
func (b *URLBuilder) Query(key, value string) *URLBuilder {
	b.query.Add(key, value)
	return b
}

// SetQuery 设置查询参数，会覆盖同名参数
func (b *URLBuilder) SetQuery(key, value string) *URLBuilder {
	b.query.Set(key, value)
	return b
}

// QueryValues 批量添加查询参数
func (b *URLBuilder) QueryValues(values url.Values) *URLBuilder {
	for k, vs := range values {
		for _, v := range vs {
			b.query.Add(k, v)
		}
	}
	return b
}

// Build 构建最终的URL字符串
func (b *URLBuilder) Build() string {
	u := &url.URL{
		Scheme: b.scheme,
		Host:   b.host,
		Path:   b.path,
	}
	if len(b.query) > 0 {
		u.RawQuery = b.query.Encode()
	}
	return u.String()
}

// String 实现fmt.Stringer接口
func (b *URLBuilder) String() string {
	return b.Build()
}

// Clone 深拷贝构建器, 用于从同一基础地址派生多个资源地址
func (b *URLBuilder) Clone() *URLBuilder {
	c := &URLBuilder{
		scheme: b.scheme,
		host:   b.host,
		path:   b.path,
		query:  make(url.Values, len(b.query)),
	}
	for k, v := range b.query {
		c.query[k] = slices.Clone(v)
	}
	return c
}

// Join 简单的路径拼接函数
func Join(base string, segments ...string) string {
	all := make([]string, 0, len(segments)+1)
	if base != "" {
		all = append(all, base)
	}
	for _, segment := range segments {
		if segment != "" {
			all = append(all, segment)
		}
	}
	if len(all) == 0 {
		return ""
	}
	return path.Join(all...)
}
