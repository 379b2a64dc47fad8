package domain

import "errors"

// ErrDataSource indica falha em uma chamada paginada ou de retrieve-by-id a
// uma fonte externa. Dentro de um adapter ela é degradada para um resumo
// zerado; fora dos caminhos com degrade (coleta de clientes para CLV) ela é
// propagada.
var ErrDataSource = errors.New("data source failure")
