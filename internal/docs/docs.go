// Package docs registra el documento OpenAPI servido en /swagger/*.
// Refleja las anotaciones godoc de los handlers (@Router, @Param, @Success,
// @Failure); si cambian, regenerar con:
//
//	swag init -g cmd/api/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "basePath": "{{.BasePath}}",
    "definitions": {
        "appointments.AppointmentResponse": {
            "properties": {
                "appointment_date": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "doctor_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "appointments.scheduleRequest": {
            "properties": {
                "appointment_date": {
                    "type": "string"
                },
                "doctor_id": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "appointments.updateStatusRequest": {
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "consultations.ConsultationResponse": {
            "properties": {
                "appointment_id": {
                    "type": "string"
                },
                "consultation_date": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "doctor_id": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "treatment_plan": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "consultations.createRequest": {
            "properties": {
                "appointment_id": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "treatment_plan": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "history.historyResponse": {
            "properties": {
                "appointments": {
                    "items": {
                        "$ref": "#/definitions/appointments.AppointmentResponse"
                    },
                    "type": "array"
                },
                "consultations": {
                    "items": {
                        "$ref": "#/definitions/consultations.ConsultationResponse"
                    },
                    "type": "array"
                },
                "patient": {
                    "$ref": "#/definitions/patients.PatientResponse"
                },
                "prescriptions": {
                    "items": {
                        "$ref": "#/definitions/prescriptions.PrescriptionResponse"
                    },
                    "type": "array"
                },
                "vitals": {
                    "items": {
                        "$ref": "#/definitions/vitals.VitalsResponse"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "inventory.createRequest": {
            "properties": {
                "medication_name": {
                    "type": "string"
                },
                "price": {
                    "example": "12.50",
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "reorder_level": {
                    "type": "integer"
                },
                "supplier": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "inventory.itemResponse": {
            "properties": {
                "id": {
                    "type": "string"
                },
                "last_updated": {
                    "type": "string"
                },
                "low_stock": {
                    "type": "boolean"
                },
                "medication_name": {
                    "type": "string"
                },
                "price": {
                    "example": "12.50",
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "reorder_level": {
                    "type": "integer"
                },
                "supplier": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "inventory.updateRequest": {
            "properties": {
                "medication_name": {
                    "type": "string"
                },
                "price": {
                    "example": "12.50",
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "reorder_level": {
                    "type": "integer"
                },
                "supplier": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "patients.PatientResponse": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "allergies": {
                    "type": "string"
                },
                "blood_type": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "emergency_contact": {
                    "type": "string"
                },
                "emergency_phone": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "medical_history": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "patients.registerPatientRequest": {
            "properties": {
                "address": {
                    "type": "string"
                },
                "allergies": {
                    "type": "string"
                },
                "blood_type": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "emergency_contact": {
                    "type": "string"
                },
                "emergency_phone": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "gender": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "medical_history": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "prescriptions.PrescriptionResponse": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "doctor_id": {
                    "type": "string"
                },
                "dosage": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string"
                },
                "medication_name": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "prescriptions.prescribeRequest": {
            "properties": {
                "dosage": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "frequency": {
                    "type": "string"
                },
                "instructions": {
                    "type": "string"
                },
                "medication_name": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "quantity": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "prescriptions.updateStatusRequest": {
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "queue.Stats": {
            "properties": {
                "completed": {
                    "type": "integer"
                },
                "in_progress": {
                    "type": "integer"
                },
                "waiting": {
                    "type": "integer"
                }
            },
            "type": "object"
        },
        "queue.enqueueRequest": {
            "properties": {
                "patient_id": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "queue_type": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "queue.entryResponse": {
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "queue_type": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "queue.updateStatusRequest": {
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "vitals.VitalsResponse": {
            "properties": {
                "anomalies": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                },
                "blood_pressure_diastolic": {
                    "type": "integer"
                },
                "blood_pressure_systolic": {
                    "type": "integer"
                },
                "heart_rate": {
                    "type": "integer"
                },
                "height": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "nurse_id": {
                    "type": "string"
                },
                "oxygen_saturation": {
                    "type": "integer"
                },
                "patient_id": {
                    "type": "string"
                },
                "recorded_at": {
                    "type": "string"
                },
                "respiratory_rate": {
                    "type": "integer"
                },
                "temperature": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "vitals.classifyResponse": {
            "properties": {
                "anomalies": {
                    "items": {
                        "type": "string"
                    },
                    "type": "array"
                }
            },
            "type": "object"
        },
        "vitals.monitoredPatientResponse": {
            "properties": {
                "alert_count": {
                    "type": "integer"
                },
                "condition": {
                    "type": "string"
                },
                "latest": {
                    "$ref": "#/definitions/vitals.VitalsResponse"
                },
                "patient_id": {
                    "type": "string"
                }
            },
            "type": "object"
        },
        "vitals.readingRequest": {
            "properties": {
                "diastolic": {
                    "type": "integer"
                },
                "heart_rate": {
                    "type": "integer"
                },
                "oxygen_saturation": {
                    "type": "integer"
                },
                "systolic": {
                    "type": "integer"
                },
                "temperature": {
                    "type": "number"
                }
            },
            "type": "object"
        },
        "vitals.recordVitalsRequest": {
            "properties": {
                "height": {
                    "type": "number"
                },
                "notes": {
                    "type": "string"
                },
                "nurse_id": {
                    "type": "string"
                },
                "patient_id": {
                    "type": "string"
                },
                "respiratory_rate": {
                    "type": "integer"
                },
                "weight": {
                    "type": "number"
                }
            },
            "type": "object"
        }
    },
    "host": "{{.Host}}",
    "info": {
        "contact": {},
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/appointments": {
            "get": {
                "parameters": [
                    {
                        "description": "ID del paciente",
                        "in": "query",
                        "name": "patientId",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/appointments.AppointmentResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch appointments",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Listar citas",
                "tags": [
                    "appointments"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Cita",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.scheduleRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/appointments.AppointmentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to create appointment",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Agendar cita",
                "tags": [
                    "appointments"
                ]
            }
        },
        "/appointments/{appointmentID}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID de la cita",
                        "in": "path",
                        "name": "appointmentID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "scheduled | completed | cancelled | no-show",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/appointments.updateStatusRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/appointments.AppointmentResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Cambiar estado de una cita",
                "tags": [
                    "appointments"
                ]
            }
        },
        "/consultations": {
            "get": {
                "parameters": [
                    {
                        "description": "ID del paciente",
                        "in": "query",
                        "name": "patientId",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/consultations.ConsultationResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch consultations",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Listar consultas",
                "tags": [
                    "consultations"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "El médico autenticado queda como doctor_id. El estado siempre es ` + "`" + `completed` + "`" + `.",
                "parameters": [
                    {
                        "description": "Consulta",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/consultations.createRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/consultations.ConsultationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to create consultation",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Registrar consulta",
                "tags": [
                    "consultations"
                ]
            }
        },
        "/inventory": {
            "get": {
                "description": "Cada fila indica ` + "`" + `low_stock` + "`" + ` (quantity <= reorder_level).",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/inventory.itemResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch inventory",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Listar inventario",
                "tags": [
                    "inventory"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Ítem",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.createRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/inventory.itemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to create inventory item",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Alta de medicamento en inventario",
                "tags": [
                    "inventory"
                ]
            }
        },
        "/inventory/low-stock": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/inventory.itemResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch inventory",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Medicamentos con stock bajo",
                "tags": [
                    "inventory"
                ]
            }
        },
        "/inventory/{itemID}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "description": "Actualización parcial: solo se modifican los campos enviados.",
                "parameters": [
                    {
                        "description": "ID del ítem",
                        "in": "path",
                        "name": "itemID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Campos a modificar",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.updateRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.itemResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to update inventory",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Actualizar ítem de inventario",
                "tags": [
                    "inventory"
                ]
            }
        },
        "/patients": {
            "get": {
                "description": "Sin filtros lista todos. ` + "`" + `phone` + "`" + ` tiene prioridad sobre ` + "`" + `patientId` + "`" + `.",
                "parameters": [
                    {
                        "description": "Teléfono exacto",
                        "in": "query",
                        "name": "phone",
                        "type": "string"
                    },
                    {
                        "description": "Número de paciente (P...)",
                        "in": "query",
                        "name": "patientId",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/patients.PatientResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch patients",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Buscar pacientes",
                "tags": [
                    "patients"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Alta de paciente en recepción. Genera el número de paciente visible (` + "`" + `patient_id` + "`" + `). Rol requerido: ` + "`" + `reception` + "`" + `.",
                "parameters": [
                    {
                        "description": "Datos del paciente; date_of_birth en formato YYYY-MM-DD",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/patients.registerPatientRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/patients.PatientResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to create patient",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Registrar paciente",
                "tags": [
                    "patients"
                ]
            }
        },
        "/patients/{patientID}": {
            "get": {
                "parameters": [
                    {
                        "description": "ID del paciente",
                        "in": "path",
                        "name": "patientID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/patients.PatientResponse"
                        }
                    },
                    "404": {
                        "description": "patient not found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch patients",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Obtener paciente",
                "tags": [
                    "patients"
                ]
            }
        },
        "/patients/{patientID}/history": {
            "get": {
                "description": "Ficha con signos vitales (clasificados), recetas, consultas y citas. Se monta bajo /patients con sus mismos roles.",
                "parameters": [
                    {
                        "description": "ID del paciente",
                        "in": "path",
                        "name": "patientID",
                        "required": true,
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/history.historyResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch patient history",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Historial del paciente",
                "tags": [
                    "patients"
                ]
            }
        },
        "/prescriptions": {
            "get": {
                "description": "Farmacia usa ` + "`" + `status=pending` + "`" + ` como cola de despacho.",
                "parameters": [
                    {
                        "description": "ID del paciente",
                        "in": "query",
                        "name": "patientId",
                        "type": "string"
                    },
                    {
                        "description": "pending | dispensed | cancelled",
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/prescriptions.PrescriptionResponse"
                            },
                            "type": "array"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch prescriptions",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Listar recetas",
                "tags": [
                    "prescriptions"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Crea la receta en estado ` + "`" + `pending` + "`" + `. quantity por defecto 1. Rol requerido: ` + "`" + `doctor` + "`" + `.",
                "parameters": [
                    {
                        "description": "Receta",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/prescriptions.prescribeRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/prescriptions.PrescriptionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to create prescription",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Emitir receta",
                "tags": [
                    "prescriptions"
                ]
            }
        },
        "/prescriptions/{prescriptionID}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID de la receta",
                        "in": "path",
                        "name": "prescriptionID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "pending | dispensed | cancelled",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/prescriptions.updateStatusRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/prescriptions.PrescriptionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to update prescription",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Cambiar estado de receta",
                "tags": [
                    "prescriptions"
                ]
            }
        },
        "/queue": {
            "get": {
                "parameters": [
                    {
                        "description": "Tipo de cola",
                        "in": "query",
                        "name": "queueType",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/queue.entryResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch queue",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Turnos en espera",
                "tags": [
                    "queue"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Sin ` + "`" + `position` + "`" + ` se asigna la siguiente de esa cola.",
                "parameters": [
                    {
                        "description": "Turno",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/queue.enqueueRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/queue.entryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to add to queue",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Agregar paciente a la cola",
                "tags": [
                    "queue"
                ]
            }
        },
        "/queue/stats": {
            "get": {
                "parameters": [
                    {
                        "description": "Tipo de cola",
                        "in": "query",
                        "name": "queueType",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/queue.Stats"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch queue",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Contadores de la cola",
                "tags": [
                    "queue"
                ]
            }
        },
        "/queue/{entryID}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID del turno",
                        "in": "path",
                        "name": "entryID",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "waiting | in-progress | completed",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/queue.updateStatusRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/queue.entryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to update queue",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Cambiar estado de un turno",
                "tags": [
                    "queue"
                ]
            }
        },
        "/vitals": {
            "get": {
                "description": "Lista lecturas, más recientes primero. Filtra por paciente con ` + "`" + `patientId` + "`" + `. Roles: ` + "`" + `nurse` + "`" + `, ` + "`" + `doctor` + "`" + `.",
                "parameters": [
                    {
                        "description": "ID del paciente",
                        "in": "query",
                        "name": "patientId",
                        "type": "string"
                    },
                    {
                        "description": "Máximo de lecturas (1-200). Por defecto 50",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/vitals.VitalsResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch vitals",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Listar signos vitales",
                "tags": [
                    "vitals"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "description": "Registra una lectura para un paciente. La lectura se clasifica antes de persistir y la respuesta incluye las anomalías detectadas. Todos los campos numéricos son obligatorios salvo peso y altura. Rol requerido: ` + "`" + `nurse` + "`" + `.",
                "parameters": [
                    {
                        "description": "Solo en modo dev, ID de usuario",
                        "in": "header",
                        "name": "X-Debug-User-ID",
                        "type": "string"
                    },
                    {
                        "description": "Solo en modo dev, rol del usuario",
                        "in": "header",
                        "name": "X-Debug-Role",
                        "type": "string"
                    },
                    {
                        "description": "Bearer token en producción",
                        "in": "header",
                        "name": "Authorization",
                        "type": "string"
                    },
                    {
                        "description": "Lectura",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vitals.recordVitalsRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/vitals.VitalsResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json / campos faltantes",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "403": {
                        "description": "forbidden",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    },
                    "500": {
                        "description": "Failed to record vitals",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Registrar signos vitales",
                "tags": [
                    "vitals"
                ]
            }
        },
        "/vitals/classify": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Lectura",
                        "in": "body",
                        "name": "payload",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vitals.readingRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vitals.classifyResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Clasificar una lectura sin registrarla",
                "tags": [
                    "vitals"
                ]
            }
        },
        "/vitals/monitoring": {
            "get": {
                "description": "Última lectura por paciente con su condición (` + "`" + `Stable` + "`" + ` sin anomalías, ` + "`" + `Critical` + "`" + ` con al menos una).",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/vitals.monitoredPatientResponse"
                            },
                            "type": "array"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch vitals",
                        "schema": {
                            "additionalProperties": {
                                "type": "string"
                            },
                            "type": "object"
                        }
                    }
                },
                "summary": "Tablero de monitoreo",
                "tags": [
                    "vitals"
                ]
            }
        }
    },
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0"
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hospital Management API",
	Description:      "Pacientes, signos vitales con clasificación de anomalías, citas, consultas, recetas, inventario y cola.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
