package postgres

// Esquema demo. Las claves foráneas replican las reglas que valida el
// pipeline; si la carga viola alguna, el problema está en el generador.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS businesses (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    industry      TEXT NOT NULL,
    business_type TEXT NOT NULL,
    size          TEXT NOT NULL,
    city          TEXT NOT NULL,
    region        TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    category      TEXT NOT NULL,
    price         NUMERIC(14,2) NOT NULL CHECK (price > 0),
    cost_price    NUMERIC(14,2) NOT NULL CHECK (cost_price > 0),
    profit_margin NUMERIC(5,1) NOT NULL,
    supplier      TEXT NOT NULL,
    description   TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS warehouses (
    id               INTEGER PRIMARY KEY,
    name             TEXT NOT NULL,
    address          TEXT NOT NULL,
    business_id      INTEGER NOT NULL REFERENCES businesses(id),
    capacity         INTEGER NOT NULL,
    location_type    TEXT NOT NULL,
    manager_name     TEXT NOT NULL,
    operational_cost NUMERIC(14,2) NOT NULL,
    created_at       TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name     TEXT NOT NULL,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    business_id   INTEGER NOT NULL REFERENCES businesses(id),
    role          TEXT NOT NULL CHECK (role IN ('ADMIN', 'USER')),
    is_active     BOOLEAN NOT NULL,
    phone_number  TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL,
    last_login    TIMESTAMP
);

CREATE TABLE IF NOT EXISTS warehouse_products (
    product_id   INTEGER NOT NULL REFERENCES products(id),
    warehouse_id INTEGER NOT NULL REFERENCES warehouses(id),
    stock        INTEGER NOT NULL CHECK (stock >= 0),
    min_stock    INTEGER NOT NULL,
    max_stock    INTEGER NOT NULL CHECK (max_stock > min_stock),
    last_updated TIMESTAMP NOT NULL,
    PRIMARY KEY (product_id, warehouse_id)
);

CREATE TABLE IF NOT EXISTS transactions (
    id               INTEGER PRIMARY KEY,
    type             TEXT NOT NULL CHECK (type IN ('ENTRADA', 'SALIDA')),
    quantity         INTEGER NOT NULL CHECK (quantity > 0),
    description      TEXT NOT NULL,
    created_at       TIMESTAMP NOT NULL,
    user_id          INTEGER NOT NULL REFERENCES users(id),
    product_id       INTEGER NOT NULL REFERENCES products(id),
    warehouse_id     INTEGER NOT NULL REFERENCES warehouses(id),
    product_name     TEXT NOT NULL,
    product_category TEXT NOT NULL,
    warehouse_name   TEXT NOT NULL,
    business_id      INTEGER NOT NULL REFERENCES businesses(id),
    user_name        TEXT NOT NULL
);
`
