package store

import "github.com/aquihaydesarrollo/a-digital-central/internal/model"

// Relational lookups: stateless linear filters over GetAll. Collections stay
// in the tens-to-hundreds range here, so no indexing is kept. A dangling
// foreign key simply yields an empty result.

func filtrar[T any](items []T, keep func(T) bool) []T {
	res := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			res = append(res, item)
		}
	}
	return res
}

// ClientesDeAsesoria returns the clients belonging to a firm.
func (s *Store) ClientesDeAsesoria(asesoriaID string) ([]model.Cliente, error) {
	clientes, err := GetAll[model.Cliente](s, model.ColClientes)
	if err != nil {
		return nil, err
	}
	return filtrar(clientes, func(c model.Cliente) bool { return c.AsesoriaID == asesoriaID }), nil
}

// EmpleadosDeAsesoria returns the firm's own staff.
func (s *Store) EmpleadosDeAsesoria(asesoriaID string) ([]model.Empleado, error) {
	empleados, err := GetAll[model.Empleado](s, model.ColEmpleados)
	if err != nil {
		return nil, err
	}
	return filtrar(empleados, func(e model.Empleado) bool { return e.AsesoriaID == asesoriaID }), nil
}

// FacturasDeCliente returns the invoices of a client.
func (s *Store) FacturasDeCliente(clienteID string) ([]model.Factura, error) {
	facturas, err := GetAll[model.Factura](s, model.ColFacturas)
	if err != nil {
		return nil, err
	}
	return filtrar(facturas, func(f model.Factura) bool { return f.ClienteID == clienteID }), nil
}

// DocumentosDeCliente returns the documents of a client.
func (s *Store) DocumentosDeCliente(clienteID string) ([]model.Documento, error) {
	documentos, err := GetAll[model.Documento](s, model.ColDocumentos)
	if err != nil {
		return nil, err
	}
	return filtrar(documentos, func(d model.Documento) bool { return d.ClienteID == clienteID }), nil
}

// TareasDeCliente returns the tasks of a client.
func (s *Store) TareasDeCliente(clienteID string) ([]model.Tarea, error) {
	tareas, err := GetAll[model.Tarea](s, model.ColTareas)
	if err != nil {
		return nil, err
	}
	return filtrar(tareas, func(t model.Tarea) bool { return t.ClienteID == clienteID }), nil
}

// EmpleadosDeCliente returns the payroll employees of a client.
func (s *Store) EmpleadosDeCliente(clienteID string) ([]model.EmpleadoCliente, error) {
	empleados, err := GetAll[model.EmpleadoCliente](s, model.ColEmpleadosCliente)
	if err != nil {
		return nil, err
	}
	return filtrar(empleados, func(e model.EmpleadoCliente) bool { return e.ClienteID == clienteID }), nil
}
