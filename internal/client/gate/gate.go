// Package gate реализует двухсостояный барьер, через который проходят
// исходящие запросы клиента. Пока барьер закрыт (идет обновление токена),
// новые запросы и ожидающие повтора ждут его открытия.
package gate

import "sync"

// Gate - барьер с очередью ожидающих.
// Нулевое значение не готово к использованию, используйте New.
type Gate struct {
	opened chan struct{} // закрывается при открытии барьера
	mu     sync.Mutex
	closed bool
}

// New создает открытый барьер.
func New() *Gate {
	return &Gate{}
}

// WaitUntilOpen блокируется, пока барьер закрыт.
// Ожидание не отменяется: его длительность ограничена таймаутом запроса обновления.
func (g *Gate) WaitUntilOpen() {
	g.mu.Lock()
	if !g.closed {
		g.mu.Unlock()
		return
	}
	ch := g.opened
	g.mu.Unlock()

	<-ch
}

// TryClose закрывает барьер, если он открыт.
// Возвращает true, если вызывающий получил право на обновление.
func (g *Gate) TryClose() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return false
	}
	g.closed = true
	g.opened = make(chan struct{})
	return true
}

// Open открывает барьер и отпускает всех ожидающих.
// Повторный вызов на открытом барьере ничего не делает.
func (g *Gate) Open() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.closed {
		return
	}
	g.closed = false
	close(g.opened)
	g.opened = nil
}

// IsOpen сообщает текущее состояние барьера.
func (g *Gate) IsOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.closed
}

// CloseThenEventuallyOpen закрывает барьер, выполняет fn и открывает барьер
// на любом пути выхода, включая панику в fn.
// Если барьер уже закрыт, fn не вызывается и возвращается false.
func (g *Gate) CloseThenEventuallyOpen(fn func()) bool {
	if !g.TryClose() {
		return false
	}
	defer g.Open()

	fn()
	return true
}
